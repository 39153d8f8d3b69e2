package codefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"camelCase", "getId", []string{"get", "Id"}},
		{"PascalCase", "GetId", []string{"Get", "Id"}},
		{"Acronym", "HTTPServer", []string{"HTTP", "Server"}},
		{"TrailingAcronym", "getID", []string{"get", "ID"}},
		{"SnakeCase", "STATUS_ACTIVE", []string{"STATUS", "_", "ACTIVE"}},
		{"MultipleUnderscores", "send__nowait", []string{"send", "__", "nowait"}},
		{"Digits", "version2Point1", []string{"version", "2", "Point", "1"}},
		{"SingleWord", "hello", []string{"hello"}},
		{"AllUppercase", "HELLO", []string{"HELLO"}},
		{"EmptyString", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitWords(tt.input))
		})
	}
}

func TestTrimCommonWordPrefix(t *testing.T) {
	assert.Equal(t,
		[]string{"Active", "Gone"},
		TrimCommonWordPrefix([]string{"StatusActive", "StatusGone"}))

	assert.Equal(t,
		[]string{"ACTIVE", "GONE"},
		TrimCommonWordPrefix([]string{"STATUS_ACTIVE", "STATUS_GONE"}))

	// At least one word is left.
	assert.Equal(t,
		[]string{"Status", "Active"},
		TrimCommonWordPrefix([]string{"Status", "StatusActive"}))

	// Word boundaries, not characters.
	assert.Equal(t,
		[]string{"Interval", "Internal"},
		TrimCommonWordPrefix([]string{"Interval", "Internal"}))

	assert.Equal(t,
		[]string{"JobStatusTodo"},
		TrimCommonWordPrefix([]string{"JobStatusTodo"}))

	assert.Empty(t, TrimCommonWordPrefix(nil))
}
