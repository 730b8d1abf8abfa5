package domain

// ProjectTypes lists the valid project categories.
var ProjectTypes = []string{"Personal", "Hackathon", "Internship", "Freelance"}

// Feature is a single checklist item on a project.
type Feature struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Project is a tracked side project. Progress is a percentage in [0,100];
// the editor rejects out-of-range values before they reach the store.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"` // Personal | Hackathon | Internship | Freelance
	Status      Status    `json:"status"`
	Progress    int       `json:"progress"`
	TechStack   TechStack `json:"techStack"`
	RepoURL     string    `json:"repoUrl"`
	DemoURL     string    `json:"demoUrl"`
	DesignURL   string    `json:"designUrl,omitempty"`
	Description string    `json:"description"`
	Features    []Feature `json:"features"`
	Learnings   string    `json:"learnings,omitempty"`
}

// CompletedFeatures counts the checked-off feature rows.
func (p Project) CompletedFeatures() int {
	n := 0
	for _, f := range p.Features {
		if f.Completed {
			n++
		}
	}
	return n
}
