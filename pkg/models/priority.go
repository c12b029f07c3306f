package models

// Priority ranks a content task for presentation ordering.
type Priority string

const (
	LowPriority    Priority = "low"
	MediumPriority Priority = "medium"
	HighPriority   Priority = "high"
	UrgentPriority Priority = "urgent"
)

// PriorityWeight maps a priority to a sort ordinal, lowest first. Unknown
// priorities sink to the bottom rather than failing.
func PriorityWeight(p Priority) int {
	switch p {
	case UrgentPriority:
		return 0
	case HighPriority:
		return 1
	case MediumPriority:
		return 2
	case LowPriority:
		return 3
	}
	return 4
}

// Marker returns a short presentation marker for a priority. Unknown
// priorities get a neutral marker.
func (p Priority) Marker() string {
	switch p {
	case LowPriority:
		return "·"
	case MediumPriority:
		return "-"
	case HighPriority:
		return "!"
	case UrgentPriority:
		return "!!"
	}
	return "?"
}
