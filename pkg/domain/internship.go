package domain

// Internship is a tracked internship application. InterviewDates holds zero
// or more calendar dates in DateLayout form, in the order they were entered.
type Internship struct {
	ID             string   `json:"id"`
	Company        string   `json:"company"`
	Role           string   `json:"role"`
	Platform       string   `json:"platform"` // sourcing platform, e.g. LinkedIn
	Location       string   `json:"location"`
	IsPaid         bool     `json:"isPaid"`
	AppliedDate    string   `json:"appliedDate"`
	Status         Status   `json:"status"`
	InterviewDates []string `json:"interviewDates"`
	ResumeVersion  string   `json:"resumeVersion,omitempty"`
	Stipend        string   `json:"stipend,omitempty"`
	Notes          string   `json:"notes"`
}
