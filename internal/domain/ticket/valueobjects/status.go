package valueobjects

import "fmt"

// Status is a ticket lifecycle state. Any valid status may be set directly;
// the lifecycle rules are expressed as derived-timestamp side effects on the
// aggregate, not as an enforced transition graph.
type Status string

const (
	StatusNew        Status = "NEW"
	StatusInProgress Status = "IN_PROGRESS"
	StatusOnHold     Status = "ON_HOLD"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

var validStatuses = map[Status]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusOnHold:     true,
	StatusResolved:   true,
	StatusClosed:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// IsReopening reports whether entering this status clears the resolution
// timestamps.
func (s Status) IsReopening() bool {
	return s == StatusNew || s == StatusInProgress
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
