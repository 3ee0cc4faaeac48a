package model

// Priority is the urgency of a task, P1 being the most urgent.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"

	DefaultPriority = PriorityP3
)

// IsValid reports whether p is one of P1..P4.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityP1, PriorityP2, PriorityP3, PriorityP4:
		return true
	}
	return false
}

// ParsePriority requires an exact match of P1..P4. Callers apply
// DefaultPriority themselves when the value is absent.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(s)
	return p, p.IsValid()
}
