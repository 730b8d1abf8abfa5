// Package form declares the per-kind editor field schemas and coerces raw
// field values into domain records. Validation happens here, at the input
// boundary: the store trusts whatever it is handed.
package form

import "github.com/trackwise/trackwise/pkg/domain"

// Type is a field's semantic type, driving coercion and editor rendering.
type Type string

const (
	TypeText   Type = "text"
	TypeDate   Type = "date"   // single calendar date, domain.DateLayout
	TypeNumber Type = "number" // integer
	TypeBool   Type = "boolean"
	TypeSelect Type = "select" // one of Options
	TypeDates  Type = "dates"  // comma-separated calendar dates
	TypeList   Type = "list"   // semicolon-separated short texts
)

// HasInput reports whether fields of this type take free text, as opposed
// to cycled selects and toggled booleans.
func (t Type) HasInput() bool {
	return t != TypeSelect && t != TypeBool
}

// Field is one entry of a kind's editor schema.
type Field struct {
	Name        string
	Label       string
	Type        Type
	Required    bool
	Options     []string // select fields only
	Stack       bool     // collected into the nested tech-stack structure
	Max         int      // inclusive upper bound for number fields; 0 = unbounded
	Placeholder string
}

// stackFields are the tech-stack sub-fields shared by hackathons and projects.
var stackFields = []Field{
	{Name: "frontend", Label: "Frontend", Type: TypeText, Stack: true, Placeholder: "React, Svelte..."},
	{Name: "backend", Label: "Backend", Type: TypeText, Stack: true, Placeholder: "Go, Node..."},
	{Name: "databases", Label: "Databases", Type: TypeText, Stack: true, Placeholder: "Postgres, Redis..."},
	{Name: "apis", Label: "APIs", Type: TypeText, Stack: true, Placeholder: "Stripe, Gemini..."},
	{Name: "devops", Label: "DevOps", Type: TypeText, Stack: true, Placeholder: "Docker, Fly.io..."},
}

var hackathonSchema = append([]Field{
	{Name: "name", Label: "Name", Type: TypeText, Required: true, Placeholder: "Hackathon name"},
	{Name: "organizer", Label: "Organizer", Type: TypeText, Placeholder: "Devpost, MLH..."},
	{Name: "mode", Label: "Mode", Type: TypeSelect, Options: domain.Modes},
	{Name: "type", Label: "Team", Type: TypeSelect, Options: domain.TeamTypes},
	{Name: "startDate", Label: "Starts", Type: TypeDate, Required: true, Placeholder: "YYYY-MM-DD"},
	{Name: "endDate", Label: "Ends", Type: TypeDate, Placeholder: "YYYY-MM-DD"},
	{Name: "deadline", Label: "Deadline", Type: TypeDate, Required: true, Placeholder: "YYYY-MM-DD"},
	{Name: "theme", Label: "Theme", Type: TypeText, Placeholder: "AI, fintech..."},
	{Name: "repoUrl", Label: "Repo URL", Type: TypeText, Placeholder: "https://github.com/..."},
	{Name: "demoUrl", Label: "Demo URL", Type: TypeText},
	{Name: "notes", Label: "Notes", Type: TypeText},
}, stackFields...)

var projectSchema = append([]Field{
	{Name: "title", Label: "Title", Type: TypeText, Required: true, Placeholder: "Project title"},
	{Name: "type", Label: "Category", Type: TypeSelect, Options: domain.ProjectTypes},
	{Name: "progress", Label: "Progress %", Type: TypeNumber, Max: 100, Placeholder: "0-100"},
	{Name: "description", Label: "Description", Type: TypeText, Placeholder: "Short brief"},
	{Name: "repoUrl", Label: "Repo URL", Type: TypeText, Placeholder: "https://github.com/..."},
	{Name: "demoUrl", Label: "Demo URL", Type: TypeText},
	{Name: "designUrl", Label: "Design URL", Type: TypeText},
	{Name: "features", Label: "Features", Type: TypeList, Placeholder: "auth; dark mode; export"},
	{Name: "learnings", Label: "Learnings", Type: TypeText},
}, stackFields...)

var internshipSchema = []Field{
	{Name: "company", Label: "Company", Type: TypeText, Required: true, Placeholder: "Company name"},
	{Name: "role", Label: "Role", Type: TypeText, Required: true, Placeholder: "SDE Intern"},
	{Name: "platform", Label: "Platform", Type: TypeText, Placeholder: "LinkedIn, referral..."},
	{Name: "location", Label: "Location", Type: TypeText, Placeholder: "Remote, NYC..."},
	{Name: "isPaid", Label: "Paid role", Type: TypeBool},
	{Name: "appliedDate", Label: "Applied", Type: TypeDate, Required: true, Placeholder: "YYYY-MM-DD"},
	{Name: "interviewDates", Label: "Interviews", Type: TypeDates, Placeholder: "2024-03-05, 2024-03-20"},
	{Name: "resumeVersion", Label: "Resume tag", Type: TypeText, Placeholder: "v3-backend"},
	{Name: "stipend", Label: "Stipend", Type: TypeText},
	{Name: "notes", Label: "Notes", Type: TypeText},
}

// Schema returns the editor field set for a record kind.
func Schema(kind domain.Kind) []Field {
	switch kind {
	case domain.KindHackathon:
		return hackathonSchema
	case domain.KindProject:
		return projectSchema
	case domain.KindInternship:
		return internshipSchema
	}
	return nil
}
