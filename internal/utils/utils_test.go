package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0123456789"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a4"))
	assert.False(t, IsDigits("+1234"))
}

func TestIsAadhaarAndIsMobile(t *testing.T) {
	assert.True(t, IsAadhaar("111122223333"))
	assert.False(t, IsAadhaar("11112222333"))
	assert.False(t, IsAadhaar("11112222333a"))

	assert.True(t, IsMobile("9876543210"))
	assert.False(t, IsMobile("98765432101"))
	assert.False(t, IsMobile("987654321"))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"US", "CA", "UK"}, SplitAndTrim(" US, CA ,UK , "))
	assert.Empty(t, SplitAndTrim(" , ,"))
}

func TestDedupe(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Dedupe([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, Dedupe(nil))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []string{"aadhaar", "mobile"}, [][]string{
		{"111122223333", "9876543210"},
		{"444455556666", "8765432109"},
	})
	require.NoError(t, err)

	assert.Equal(t, "aadhaar,mobile\n111122223333,9876543210\n444455556666,8765432109\n", buf.String())
}
