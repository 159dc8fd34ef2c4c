package valueobjects

import "fmt"

// Status represents the account status
type Status string

const (
	StatusActive Status = "active"
	StatusLocked Status = "locked"
)

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusActive, StatusLocked:
		return Status(value), nil
	case "":
		return StatusActive, nil
	default:
		return "", fmt.Errorf("invalid user status: %s", value)
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func (s Status) IsLocked() bool {
	return s == StatusLocked
}
