package hashprefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition_KnownVector(t *testing.T) {
	prefix, suffix := Partition("password")

	assert.Equal(t, Prefix("5BAA6"), prefix)
	assert.Equal(t, Suffix("1E4C9B93F3F0682250B6CF8331B7EE68FD8"), suffix)
	assert.Equal(t, "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8", Digest("password"))
}

func TestPartition_Empty(t *testing.T) {
	prefix, suffix := Partition("")

	assert.Equal(t, Prefix("DA39A"), prefix)
	assert.Equal(t, "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709", string(prefix)+string(suffix))
}

func TestPartition_DeterministicAndWellFormed(t *testing.T) {
	inputs := []string{"", "password", "xk9#nonsense-unlikely-pw!", "пароль", "  spaced  ", "\x00"}
	for _, in := range inputs {
		p1, s1 := Partition(in)
		p2, s2 := Partition(in)
		require.Equal(t, p1, p2, "prefix for %q", in)
		require.Equal(t, s1, s2, "suffix for %q", in)

		full := string(p1) + string(s1)
		require.Len(t, full, DigestLen)
		assert.Len(t, string(s1), DigestLen-PrefixLen)
		for _, c := range full {
			assert.True(t, (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F'), "char %q in %s", c, full)
		}
		assert.True(t, ValidPrefix(string(p1)))
	}
}

func TestValidPrefix(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"5BAA6", true},
		{"00000", true},
		{"5baa6", false},
		{"5BAA", false},
		{"5BAA61", false},
		{"5BAG6", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidPrefix(tc.in), "ValidPrefix(%q)", tc.in)
	}
}
