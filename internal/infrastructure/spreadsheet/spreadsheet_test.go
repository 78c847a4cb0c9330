package spreadsheet

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()

	file := excelize.NewFile()
	for i, row := range rows {
		for j, value := range row {
			file.SetCellValue("Sheet1", fmt.Sprintf("%c%d", 'A'+j, i+1), value)
		}
	}
	buf, err := file.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadRows(t *testing.T) {
	buf := workbook(t, [][]string{
		{"Name", " Email ", "Password", "Role"},
		{"Amina", "amina@esi-sba.dz", "secret123", "student"},
		{"", "", "", ""},
		{"Karim", "karim@esi-sba.dz", "secret123", "teacher"},
	})

	rows, err := ReadRows(buf, "name", "email", "password", "role")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "amina@esi-sba.dz", rows[0].Get("email"))
	assert.Equal(t, 4, rows[1].Line)
	assert.Equal(t, "teacher", rows[1].Get("role"))
	assert.Nil(t, rows[1].Optional("gender"))
}

func TestReadRows_MissingColumns(t *testing.T) {
	buf := workbook(t, [][]string{{"name", "email"}})

	_, err := ReadRows(buf, "name", "email", "password", "role")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password, role")
}

func TestReadRows_NotAWorkbook(t *testing.T) {
	_, err := ReadRows(bytes.NewBufferString("name,email\n"), "name")
	assert.Error(t, err)
}
