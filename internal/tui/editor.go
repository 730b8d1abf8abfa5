package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackwise/trackwise/internal/form"
	"github.com/trackwise/trackwise/pkg/domain"
)

// editorField pairs a schema field with its input state. Text-like fields
// own a textinput; selects track an option index; booleans a flag.
type editorField struct {
	def     form.Field
	input   textinput.Model
	optIdx  int
	checked bool
}

type editorModel struct {
	kind   domain.Kind
	title  string
	fields []editorField
	focus  int
	errMsg string

	// Existing record when editing; nil pointers mean create.
	existH *domain.Hackathon
	existP *domain.Project
	existI *domain.Internship

	width  int
	height int
}

// newEditor builds the editor for a kind, prefilled from record when editing.
// record is a domain.Hackathon/Project/Internship value, or nil for create.
func newEditor(kind domain.Kind, record any) editorModel {
	m := editorModel{kind: kind, title: "New " + kind.Title()}

	values := form.Values{}
	switch r := record.(type) {
	case domain.Hackathon:
		m.existH = &r
		values = hackathonValues(r)
	case domain.Project:
		m.existP = &r
		values = projectValues(r)
	case domain.Internship:
		m.existI = &r
		values = internshipValues(r)
	}
	if record != nil {
		m.title = "Edit " + kind.Title()
	}

	for _, def := range form.Schema(kind) {
		f := editorField{def: def}
		switch def.Type {
		case form.TypeSelect:
			for i, opt := range def.Options {
				if opt == values[def.Name] {
					f.optIdx = i
					break
				}
			}
		case form.TypeBool:
			f.checked = values[def.Name] == "true"
		default:
			ti := textinput.New()
			ti.Placeholder = def.Placeholder
			ti.CharLimit = 300
			ti.Width = 48
			ti.SetValue(values[def.Name])
			f.input = ti
		}
		m.fields = append(m.fields, f)
	}
	m.setFocus(0)
	return m
}

func (m editorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *editorModel) setFocus(i int) {
	for j := range m.fields {
		if m.fields[j].def.Type.HasInput() {
			m.fields[j].input.Blur()
		}
	}
	m.focus = i
	if m.fields[i].def.Type.HasInput() {
		m.fields[i].input.Focus()
	}
}

func (m editorModel) Update(msg tea.Msg) (editorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.errMsg = ""
		n := len(m.fields)
		f := &m.fields[m.focus]

		switch msg.String() {
		case "ctrl+s":
			return m.submit()
		case "tab", "down":
			m.setFocus((m.focus + 1) % n)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus - 1 + n) % n)
			return m, nil
		case "enter":
			m.setFocus((m.focus + 1) % n)
			return m, nil
		}

		switch f.def.Type {
		case form.TypeSelect:
			switch msg.String() {
			case "l", "right":
				f.optIdx = (f.optIdx + 1) % len(f.def.Options)
			case "h", "left":
				f.optIdx = (f.optIdx - 1 + len(f.def.Options)) % len(f.def.Options)
			}
			return m, nil
		case form.TypeBool:
			if msg.String() == " " || msg.String() == "space" {
				f.checked = !f.checked
			}
			return m, nil
		}
	}

	// Everything else feeds the focused text input.
	if m.fields[m.focus].def.Type.HasInput() {
		var cmd tea.Cmd
		m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m editorModel) submit() (editorModel, tea.Cmd) {
	v := form.Values{}
	for _, f := range m.fields {
		switch f.def.Type {
		case form.TypeSelect:
			v[f.def.Name] = f.def.Options[f.optIdx]
		case form.TypeBool:
			v[f.def.Name] = strconv.FormatBool(f.checked)
		default:
			v[f.def.Name] = f.input.Value()
		}
	}

	var (
		record any
		err    error
	)
	switch m.kind {
	case domain.KindHackathon:
		record, err = form.Hackathon(v, m.existH)
	case domain.KindProject:
		record, err = form.Project(v, m.existP)
	case domain.KindInternship:
		record, err = form.Internship(v, m.existI)
	}
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	kind := m.kind
	return m, func() tea.Msg {
		return recordSavedMsg{kind: kind, record: record}
	}
}

func (m editorModel) View() string {
	var b strings.Builder
	b.WriteString(" " + accentStyle.Render(m.title) + "\n\n")

	for i, f := range m.fields {
		cursor := " "
		labelStyle := metaStyle
		if i == m.focus {
			cursor = ">"
			labelStyle = selectedStyle
		}
		label := labelStyle.Render(fmt.Sprintf("%-12s", f.def.Label))

		var value string
		switch f.def.Type {
		case form.TypeSelect:
			opts := make([]string, len(f.def.Options))
			for j, opt := range f.def.Options {
				if j == f.optIdx {
					opts[j] = accentStyle.Render("[" + opt + "]")
				} else {
					opts[j] = dimStyle.Render(opt)
				}
			}
			value = strings.Join(opts, " ")
		case form.TypeBool:
			if f.checked {
				value = okStyle.Render("[x] yes")
			} else {
				value = dimStyle.Render("[ ] no")
			}
		default:
			value = f.input.View()
		}

		fmt.Fprintf(&b, " %s %s %s\n", cursor, label, value)
	}

	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(" " + errorStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// -- prefill --

func hackathonValues(h domain.Hackathon) form.Values {
	v := form.Values{
		"name":      h.Name,
		"organizer": h.Organizer,
		"mode":      h.Mode,
		"type":      h.TeamType,
		"startDate": h.StartDate,
		"endDate":   h.EndDate,
		"deadline":  h.Deadline,
		"theme":     h.Theme,
		"repoUrl":   h.RepoURL,
		"demoUrl":   h.DemoURL,
		"notes":     h.Notes,
	}
	stackValues(v, h.TechStack)
	return v
}

func projectValues(p domain.Project) form.Values {
	features := make([]string, len(p.Features))
	for i, f := range p.Features {
		features[i] = f.Text
	}
	v := form.Values{
		"title":       p.Title,
		"type":        p.Type,
		"progress":    strconv.Itoa(p.Progress),
		"description": p.Description,
		"repoUrl":     p.RepoURL,
		"demoUrl":     p.DemoURL,
		"designUrl":   p.DesignURL,
		"features":    strings.Join(features, "; "),
		"learnings":   p.Learnings,
	}
	stackValues(v, p.TechStack)
	return v
}

func internshipValues(in domain.Internship) form.Values {
	return form.Values{
		"company":        in.Company,
		"role":           in.Role,
		"platform":       in.Platform,
		"location":       in.Location,
		"isPaid":         strconv.FormatBool(in.IsPaid),
		"appliedDate":    in.AppliedDate,
		"interviewDates": strings.Join(in.InterviewDates, ", "),
		"resumeVersion":  in.ResumeVersion,
		"stipend":        in.Stipend,
		"notes":          in.Notes,
	}
}

func stackValues(v form.Values, ts domain.TechStack) {
	v["frontend"] = ts.Frontend
	v["backend"] = ts.Backend
	v["databases"] = ts.Databases
	v["apis"] = ts.APIs
	v["devops"] = ts.DevOps
}
