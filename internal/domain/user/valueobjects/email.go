package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

const maxEmailLength = 255

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}$`)

// Email is a lower-cased address as Google reports it for the account.
type Email struct {
	value string
}

func NewEmail(raw string) (*Email, error) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case addr == "":
		return nil, fmt.Errorf("email is required")
	case len(addr) > maxEmailLength:
		return nil, fmt.Errorf("email longer than %d characters", maxEmailLength)
	case !emailPattern.MatchString(addr):
		return nil, fmt.Errorf("malformed email %q", raw)
	}
	return &Email{value: addr}, nil
}

func (e *Email) String() string { return e.value }

// LocalPart is used as the display name when Google sends none.
func (e *Email) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}
