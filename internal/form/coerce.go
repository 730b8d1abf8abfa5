package form

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trackwise/trackwise/pkg/domain"
)

// Values holds raw field values keyed by schema field name. Keys that do not
// appear in the kind's schema are ignored.
type Values map[string]string

// coerced is the typed output of the generic coercion pass.
type coerced struct {
	text  map[string]string
	nums  map[string]int
	flags map[string]bool
	lists map[string][]string
	stack domain.TechStack
}

// coerce walks a kind's schema once, validating required fields and parsing
// each raw value per its declared type. Tech-stack sub-fields are collected
// into the nested structure instead of the flat maps.
func coerce(kind domain.Kind, v Values) (coerced, error) {
	c := coerced{
		text:  map[string]string{},
		nums:  map[string]int{},
		flags: map[string]bool{},
		lists: map[string][]string{},
	}

	for _, f := range Schema(kind) {
		raw := strings.TrimSpace(v[f.Name])
		if raw == "" {
			if f.Required {
				return c, fmt.Errorf("%s is required", f.Label)
			}
			if f.Type == TypeSelect && len(f.Options) > 0 {
				c.text[f.Name] = f.Options[0]
			}
			continue
		}

		switch f.Type {
		case TypeText:
			if f.Stack {
				setStackField(&c.stack, f.Name, raw)
			} else {
				c.text[f.Name] = raw
			}

		case TypeDate:
			if _, err := time.Parse(domain.DateLayout, raw); err != nil {
				return c, fmt.Errorf("%s: %q is not a YYYY-MM-DD date", f.Label, raw)
			}
			c.text[f.Name] = raw

		case TypeNumber:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return c, fmt.Errorf("%s: %q is not a whole number", f.Label, raw)
			}
			if n < 0 {
				return c, fmt.Errorf("%s must not be negative", f.Label)
			}
			if f.Max > 0 && n > f.Max {
				return c, fmt.Errorf("%s must be between 0 and %d", f.Label, f.Max)
			}
			c.nums[f.Name] = n

		case TypeBool:
			switch strings.ToLower(raw) {
			case "true", "on", "yes", "1":
				c.flags[f.Name] = true
			default:
				c.flags[f.Name] = false
			}

		case TypeSelect:
			valid := false
			for _, opt := range f.Options {
				if raw == opt {
					valid = true
					break
				}
			}
			if !valid {
				return c, fmt.Errorf("%s: %q is not one of %s", f.Label, raw, strings.Join(f.Options, "/"))
			}
			c.text[f.Name] = raw

		case TypeDates:
			for _, part := range strings.Split(raw, ",") {
				d := strings.TrimSpace(part)
				if d == "" {
					continue
				}
				if _, err := time.Parse(domain.DateLayout, d); err != nil {
					return c, fmt.Errorf("%s: %q is not a YYYY-MM-DD date", f.Label, d)
				}
				c.lists[f.Name] = append(c.lists[f.Name], d)
			}

		case TypeList:
			for _, part := range strings.Split(raw, ";") {
				if item := strings.TrimSpace(part); item != "" {
					c.lists[f.Name] = append(c.lists[f.Name], item)
				}
			}
		}
	}

	return c, nil
}

func setStackField(ts *domain.TechStack, name, value string) {
	switch name {
	case "frontend":
		ts.Frontend = value
	case "backend":
		ts.Backend = value
	case "databases":
		ts.Databases = value
	case "apis":
		ts.APIs = value
	case "devops":
		ts.DevOps = value
	}
}

// Hackathon builds a hackathon record from raw editor values. Passing an
// existing record preserves its identifier and status (edit); nil means
// create, with the status defaulted.
func Hackathon(v Values, existing *domain.Hackathon) (domain.Hackathon, error) {
	c, err := coerce(domain.KindHackathon, v)
	if err != nil {
		return domain.Hackathon{}, err
	}
	h := domain.Hackathon{Status: domain.DefaultStatus(domain.KindHackathon)}
	if existing != nil {
		h.ID = existing.ID
		h.Status = existing.Status
	}
	h.Name = c.text["name"]
	h.Organizer = c.text["organizer"]
	h.Mode = c.text["mode"]
	h.TeamType = c.text["type"]
	h.StartDate = c.text["startDate"]
	h.EndDate = c.text["endDate"]
	h.Deadline = c.text["deadline"]
	h.Theme = c.text["theme"]
	h.RepoURL = c.text["repoUrl"]
	h.DemoURL = c.text["demoUrl"]
	h.Notes = c.text["notes"]
	h.TechStack = c.stack
	return h, nil
}

// Project builds a project record from raw editor values. Feature lines that
// match an existing feature's text keep its id and completed flag; new lines
// mint fresh ids.
func Project(v Values, existing *domain.Project) (domain.Project, error) {
	c, err := coerce(domain.KindProject, v)
	if err != nil {
		return domain.Project{}, err
	}
	p := domain.Project{Status: domain.DefaultStatus(domain.KindProject)}
	if existing != nil {
		p.ID = existing.ID
		p.Status = existing.Status
	}
	p.Title = c.text["title"]
	p.Type = c.text["type"]
	p.Progress = c.nums["progress"]
	p.Description = c.text["description"]
	p.RepoURL = c.text["repoUrl"]
	p.DemoURL = c.text["demoUrl"]
	p.DesignURL = c.text["designUrl"]
	p.Learnings = c.text["learnings"]
	p.TechStack = c.stack

	var prior []domain.Feature
	if existing != nil {
		prior = existing.Features
	}
	for _, text := range c.lists["features"] {
		p.Features = append(p.Features, featureFor(text, prior))
	}
	return p, nil
}

// featureFor reuses a prior feature with identical text so its id and
// completed flag survive a re-edit.
func featureFor(text string, prior []domain.Feature) domain.Feature {
	for _, f := range prior {
		if f.Text == text {
			return f
		}
	}
	return domain.Feature{ID: uuid.NewString(), Text: text}
}

// Internship builds an internship record from raw editor values.
func Internship(v Values, existing *domain.Internship) (domain.Internship, error) {
	c, err := coerce(domain.KindInternship, v)
	if err != nil {
		return domain.Internship{}, err
	}
	in := domain.Internship{Status: domain.DefaultStatus(domain.KindInternship)}
	if existing != nil {
		in.ID = existing.ID
		in.Status = existing.Status
	}
	in.Company = c.text["company"]
	in.Role = c.text["role"]
	in.Platform = c.text["platform"]
	in.Location = c.text["location"]
	in.IsPaid = c.flags["isPaid"]
	in.AppliedDate = c.text["appliedDate"]
	in.InterviewDates = c.lists["interviewDates"]
	in.ResumeVersion = c.text["resumeVersion"]
	in.Stipend = c.text["stipend"]
	in.Notes = c.text["notes"]
	return in, nil
}
