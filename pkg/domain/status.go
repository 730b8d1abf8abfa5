package domain

// Status is a lifecycle stage within a kind's fixed enumeration. Statuses
// are freely reassignable; no transition order is enforced.
type Status string

// Hackathon statuses.
const (
	HackathonRegistered  Status = "Registered"
	HackathonBuilding    Status = "Building"
	HackathonSubmitted   Status = "Submitted"
	HackathonShortlisted Status = "Shortlisted"
	HackathonWinner      Status = "Winner"
	HackathonNotSelected Status = "Not Selected"
)

// Project statuses.
const (
	ProjectIdea      Status = "Idea"
	ProjectDesigning Status = "Designing"
	ProjectBuilding  Status = "Building"
	ProjectTesting   Status = "Testing"
	ProjectShipped   Status = "Shipped"
)

// Internship statuses.
const (
	InternshipApplied       Status = "Applied"
	InternshipOA            Status = "OA Received"
	InternshipInterviewSet  Status = "Interview Scheduled"
	InternshipInterviewDone Status = "Interview Done"
	InternshipOffer         Status = "Offer"
	InternshipRejected      Status = "Rejected"
	InternshipGhosted       Status = "Ghosted"
)

var statusesByKind = map[Kind][]Status{
	KindHackathon: {
		HackathonRegistered,
		HackathonBuilding,
		HackathonSubmitted,
		HackathonShortlisted,
		HackathonWinner,
		HackathonNotSelected,
	},
	KindProject: {
		ProjectIdea,
		ProjectDesigning,
		ProjectBuilding,
		ProjectTesting,
		ProjectShipped,
	},
	KindInternship: {
		InternshipApplied,
		InternshipOA,
		InternshipInterviewSet,
		InternshipInterviewDone,
		InternshipOffer,
		InternshipRejected,
		InternshipGhosted,
	},
}

// StatusesFor returns a kind's enumeration in lifecycle display order.
func StatusesFor(kind Kind) []Status {
	return statusesByKind[kind]
}

// ValidStatus reports whether s belongs to kind's enumeration.
func ValidStatus(kind Kind, s Status) bool {
	for _, v := range statusesByKind[kind] {
		if v == s {
			return true
		}
	}
	return false
}

// DefaultStatus returns the status assigned to freshly created records of a
// kind: the first entry of its enumeration.
func DefaultStatus(kind Kind) Status {
	ss := statusesByKind[kind]
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}

// NextStatus returns the status following s in kind's enumeration, wrapping
// to the first. Unknown statuses map to the kind's default.
func NextStatus(kind Kind, s Status) Status {
	ss := statusesByKind[kind]
	for i, v := range ss {
		if v == s {
			return ss[(i+1)%len(ss)]
		}
	}
	return DefaultStatus(kind)
}

// StatusInfo is the display metadata for one (kind, status) pair: a short
// label, a color tag for visual grouping, and an icon tag. Pure lookup data.
type StatusInfo struct {
	Label string
	Color string // hex color tag
	Icon  string // icon tag, resolved to a glyph by the presentation layer
}

// statusKey keys the registry by (kind, status). Keying by status string
// alone would collide: both the hackathon and project enumerations contain
// "Building".
type statusKey struct {
	kind   Kind
	status Status
}

var statusRegistry = map[statusKey]StatusInfo{
	{KindHackathon, HackathonRegistered}:  {"Registered", "#22d3ee", "clock"},
	{KindHackathon, HackathonBuilding}:    {"Building", "#facc15", "wrench"},
	{KindHackathon, HackathonSubmitted}:   {"Submitted", "#c084fc", "send"},
	{KindHackathon, HackathonShortlisted}: {"Shortlisted", "#f472b6", "zap"},
	{KindHackathon, HackathonWinner}:      {"Winner", "#4ade80", "trophy"},
	{KindHackathon, HackathonNotSelected}: {"Not Selected", "#94a3b8", "alert"},

	{KindProject, ProjectIdea}:      {"Idea", "#94a3b8", "bulb"},
	{KindProject, ProjectDesigning}: {"Designing", "#818cf8", "eye"},
	{KindProject, ProjectBuilding}:  {"Building", "#fbbf24", "hammer"},
	{KindProject, ProjectTesting}:   {"Testing", "#fb923c", "alert"},
	{KindProject, ProjectShipped}:   {"Shipped", "#4ade80", "rocket"},

	{KindInternship, InternshipApplied}:       {"Applied", "#60a5fa", "mail"},
	{KindInternship, InternshipOA}:            {"OA Received", "#c084fc", "file"},
	{KindInternship, InternshipInterviewSet}:  {"Interview Scheduled", "#fb923c", "calendar"},
	{KindInternship, InternshipInterviewDone}: {"Interview Done", "#22d3ee", "check"},
	{KindInternship, InternshipOffer}:         {"Offer", "#4ade80", "trophy"},
	{KindInternship, InternshipRejected}:      {"Rejected", "#f87171", "x"},
	{KindInternship, InternshipGhosted}:       {"Ghosted", "#64748b", "ghost"},
}

// LookupStatus returns the display metadata for a (kind, status) pair.
func LookupStatus(kind Kind, s Status) (StatusInfo, bool) {
	info, ok := statusRegistry[statusKey{kind, s}]
	return info, ok
}
