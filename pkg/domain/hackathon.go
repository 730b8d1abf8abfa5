package domain

// Valid hackathon modes.
const (
	ModeOnline  = "Online"
	ModeOffline = "Offline"
	ModeHybrid  = "Hybrid"
)

// Modes lists the valid hackathon participation modes.
var Modes = []string{ModeOnline, ModeOffline, ModeHybrid}

// TeamTypes lists the valid hackathon team types.
var TeamTypes = []string{"Solo", "Team"}

// Hackathon is a tracked hackathon entry. Dates are calendar dates in
// DateLayout form; empty strings mean "not set".
type Hackathon struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Organizer string    `json:"organizer"`
	Mode      string    `json:"mode"` // Online | Offline | Hybrid
	TeamType  string    `json:"type"` // Team | Solo
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Deadline  string    `json:"deadline"` // submission deadline
	Theme     string    `json:"theme"`
	TechStack TechStack `json:"techStack"`
	RepoURL   string    `json:"repoUrl,omitempty"`
	DemoURL   string    `json:"demoUrl,omitempty"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes"`
}
