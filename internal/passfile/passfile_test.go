package passfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single no newline", "abc123", []string{"abc123"}},
		{"crlf and trailing spaces", "abc123 \r\nhunter2\t\r\n", []string{"abc123", "hunter2"}},
		{"empty lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"leading whitespace kept", "  lead\n", []string{"  lead"}},
		{"whitespace-only line", "   \n", []string{""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_LineTooLong(t *testing.T) {
	_, err := Parse(strings.NewReader(strings.Repeat("x", maxLineSize+1)))
	assert.ErrorContains(t, err, "read password file")
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc123\npassword\n"), 0600))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc123", "password"}, got)
}

func TestRead_Missing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.txt"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}
