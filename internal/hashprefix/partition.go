// Package hashprefix turns a password into the SHA-1 prefix/suffix pair used
// by k-anonymity range lookups. Only the prefix is ever sent over the wire.
package hashprefix

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

const (
	// DigestLen is the length of an uppercase hex SHA-1 digest.
	DigestLen = 40
	// PrefixLen is the number of leading digest characters sent to the range API.
	PrefixLen = 5
)

// Prefix is the leading part of a digest used as the range query key.
type Prefix string

// Suffix is the remainder of a digest, compared locally against candidates.
type Suffix string

// Digest returns the uppercase hex SHA-1 of the UTF-8 bytes of password.
func Digest(password string) string {
	sum := sha1.Sum([]byte(password))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// Partition hashes password and splits the digest at PrefixLen.
func Partition(password string) (Prefix, Suffix) {
	d := Digest(password)
	return Prefix(d[:PrefixLen]), Suffix(d[PrefixLen:])
}

// ValidPrefix reports whether s is exactly PrefixLen uppercase hex characters.
func ValidPrefix(s string) bool {
	if len(s) != PrefixLen {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
