package domain

// TechStack is the free-text technology summary attached to hackathons and
// projects. Every field is optional and purely descriptive.
type TechStack struct {
	Frontend  string `json:"frontend,omitempty"`
	Backend   string `json:"backend,omitempty"`
	Databases string `json:"databases,omitempty"`
	APIs      string `json:"apis,omitempty"`
	DevOps    string `json:"devops,omitempty"`
}

// Empty reports whether no stack field has been filled in.
func (t TechStack) Empty() bool {
	return t == TechStack{}
}
