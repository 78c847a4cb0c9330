package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles() {
		parsed, ok := ParseRole(r.String())
		require.True(t, ok, r.String())
		assert.Equal(t, r, parsed)
	}

	parsed, ok := ParseRole("  Doctor_Assistant ")
	assert.True(t, ok)
	assert.Equal(t, RoleDoctorAssistant, parsed)

	_, ok = ParseRole("patient")
	assert.False(t, ok)
}

func TestRole_SeededIDs(t *testing.T) {
	assert.Equal(t, 1, int(RoleAdmin))
	assert.Equal(t, 2, int(RoleDoctor))
	assert.Equal(t, 3, int(RoleDoctorAssistant))
	assert.Equal(t, 4, int(RoleStudent))
	assert.Equal(t, 5, int(RoleTeacher))
	assert.Equal(t, 6, int(RoleEmployer))
}

func TestRole_InIsExactMembership(t *testing.T) {
	assert.True(t, RoleDoctor.In(RoleDoctor, RoleAdmin))
	assert.False(t, RoleAdmin.In(RoleDoctor))
	assert.False(t, RoleDoctor.In())

	for _, r := range AllRoles() {
		assert.Equal(t, r == RoleStudent || r == RoleTeacher || r == RoleEmployer, r.IsPatient(), r.String())
	}
}

func TestRole_JSON(t *testing.T) {
	raw, err := json.Marshal(RoleEmployer)
	require.NoError(t, err)
	assert.JSONEq(t, `"employer"`, string(raw))

	var r Role
	require.NoError(t, json.Unmarshal([]byte(`"teacher"`), &r))
	assert.Equal(t, RoleTeacher, r)

	assert.Error(t, json.Unmarshal([]byte(`"superuser"`), &r))
	_, err = json.Marshal(Role(42))
	assert.Error(t, err)
}

func TestRole_Scan(t *testing.T) {
	var r Role
	require.NoError(t, r.Scan(int64(2)))
	assert.Equal(t, RoleDoctor, r)
	require.NoError(t, r.Scan([]byte("5")))
	assert.Equal(t, RoleTeacher, r)
	assert.Error(t, r.Scan("x"))

	v, err := RoleStudent.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)
}
