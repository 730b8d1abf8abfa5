package domain

// Kind identifies one of the three record collections. It determines the
// editor field schema and which status enumeration applies.
type Kind string

const (
	KindHackathon  Kind = "hackathon"
	KindProject    Kind = "project"
	KindInternship Kind = "internship"
)

// Kinds lists every record kind in display order.
var Kinds = []Kind{KindHackathon, KindProject, KindInternship}

// Title returns the capitalized singular display name for a kind.
func (k Kind) Title() string {
	switch k {
	case KindHackathon:
		return "Hackathon"
	case KindProject:
		return "Project"
	case KindInternship:
		return "Internship"
	}
	return string(k)
}

// DateLayout is the calendar-date form all record dates are stored in.
// It sorts lexicographically in chronological order.
const DateLayout = "2006-01-02"
