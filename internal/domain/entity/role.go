package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Role is the closed set of user roles. Values match the ids seeded in the roles table.
type Role int

const (
	RoleAdmin Role = iota + 1
	RoleDoctor
	RoleDoctorAssistant
	RoleStudent
	RoleTeacher
	RoleEmployer
)

var roleNames = map[Role]string{
	RoleAdmin:           "admin",
	RoleDoctor:          "doctor",
	RoleDoctorAssistant: "doctor_assistant",
	RoleStudent:         "student",
	RoleTeacher:         "teacher",
	RoleEmployer:        "employer",
}

// AllRoles lists every role in id order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleDoctor, RoleDoctorAssistant, RoleStudent, RoleTeacher, RoleEmployer}
}

// PatientRoles are the roles that own a patient record.
func PatientRoles() []Role {
	return []Role{RoleStudent, RoleTeacher, RoleEmployer}
}

// StaffRoles may read any patient record.
func StaffRoles() []Role {
	return []Role{RoleAdmin, RoleDoctor, RoleDoctorAssistant}
}

// ParseRole resolves a role by name, case-insensitively.
func ParseRole(name string) (Role, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range roleNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// In reports exact membership. No role implies another.
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}

func (r Role) IsPatient() bool {
	return r.In(PatientRoles()...)
}

func (r Role) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %d", int(r))
	}
	return json.Marshal(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := ParseRole(name)
	if !ok {
		return fmt.Errorf("unknown role %q", name)
	}
	*r = parsed
	return nil
}

func (r Role) Value() (driver.Value, error) {
	return int64(r), nil
}

func (r *Role) Scan(value interface{}) error {
	switch v := value.(type) {
	case int64:
		*r = Role(v)
	case int32:
		*r = Role(v)
	case int16:
		*r = Role(v)
	case []byte:
		var n int
		if _, err := fmt.Sscan(string(v), &n); err != nil {
			return err
		}
		*r = Role(n)
	default:
		return fmt.Errorf("cannot scan %T into Role", value)
	}
	return nil
}

// RoleDefinition is a row of the roles reference table.
type RoleDefinition struct {
	ID          Role   `gorm:"primaryKey" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (RoleDefinition) TableName() string {
	return "roles"
}
