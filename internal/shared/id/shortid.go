// Package id issues the public identifiers exposed by the API, such as
// "prop_7Hq2xK9mP2vL". Numeric primary keys never leave the service.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the number of random base62 characters after the prefix.
	DefaultLength = 12
)

const (
	PrefixUser         = "usr"
	PrefixProperty     = "prop"
	PrefixPackage      = "pkg"
	PrefixOrder        = "ord"
	PrefixConversation = "chat"
	PrefixMessage      = "msg"
)

var alphabetSize = big.NewInt(int64(len(alphabet)))

// NewSID returns prefix + "_" + DefaultLength random base62 characters.
func NewSID(prefix string) (string, error) {
	var b strings.Builder
	b.Grow(len(prefix) + 1 + DefaultLength)
	b.WriteString(prefix)
	b.WriteByte('_')
	for i := 0; i < DefaultLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate %s id: %w", prefix, err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}

// ValidatePrefix reports whether sid has the form "<prefix>_<body>" with a
// non-empty body.
func ValidatePrefix(sid, prefix string) error {
	head, body, ok := strings.Cut(sid, "_")
	if !ok || body == "" {
		return fmt.Errorf("malformed id %q", sid)
	}
	if head != prefix {
		return fmt.Errorf("id %q does not belong to %s", sid, prefix)
	}
	return nil
}
