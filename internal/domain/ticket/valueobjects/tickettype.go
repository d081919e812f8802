package valueobjects

import "fmt"

// Type classifies what kind of request a ticket is.
type Type string

const (
	TypeIncident Type = "INCIDENT"
	TypeRequest  Type = "REQUEST"
	TypeQuestion Type = "QUESTION"
	TypeProblem  Type = "PROBLEM"
)

var validTypes = map[Type]bool{
	TypeIncident: true,
	TypeRequest:  true,
	TypeQuestion: true,
	TypeProblem:  true,
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

func NewType(s string) (Type, error) {
	tt := Type(s)
	if !tt.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return tt, nil
}
