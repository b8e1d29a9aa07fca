package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParamTypeRejectsUnknown(t *testing.T) {
	_, err := ParseParamType("duration")
	require.Error(t, err)
}

func TestValidateParamValueBool(t *testing.T) {
	require.NoError(t, ValidateParamValue(TypeBool, "true"))
	require.NoError(t, ValidateParamValue(TypeBool, "false"))
	assert.Error(t, ValidateParamValue(TypeBool, "yes"))
}

func TestValidateParamValueInt(t *testing.T) {
	require.NoError(t, ValidateParamValue(TypeInt, "-42"))
	assert.Error(t, ValidateParamValue(TypeInt, "4.2"))
}

func TestValidateParamValueFloat(t *testing.T) {
	require.NoError(t, ValidateParamValue(TypeFloat, "3.14"))
	require.NoError(t, ValidateParamValue(TypeFloat, "-2"))
	assert.Error(t, ValidateParamValue(TypeFloat, "abc"))
}

func TestCoerceParamValue(t *testing.T) {
	v, err := CoerceParamValue(TypeInt, "7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}
