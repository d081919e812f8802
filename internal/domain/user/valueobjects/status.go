package valueobjects

import "fmt"

// Status is the lifecycle state of a member account.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusDeleted   Status = "DELETED"
)

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusActive:    true,
	StatusSuspended: true,
	StatusDeleted:   true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func (s Status) IsPending() bool {
	return s == StatusPending
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid user status: %s", s)
	}
	return status, nil
}
