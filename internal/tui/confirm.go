package tui

import (
	"fmt"

	"github.com/trackwise/trackwise/pkg/domain"
)

// confirmModel is the delete confirmation overlay. Key handling lives in the
// root model; this only carries the target and renders the prompt.
type confirmModel struct {
	kind domain.Kind
	id   string
	name string
}

func newConfirmModel(kind domain.Kind, id, name string) confirmModel {
	return confirmModel{kind: kind, id: id, name: name}
}

func (m confirmModel) View() string {
	return fmt.Sprintf("\n %s\n\n %s\n",
		errorStyle.Render(fmt.Sprintf("Delete %s %q?", m.kind, truncStr(m.name, 50))),
		dimStyle.Render("This cannot be undone. Press y to delete, n to keep."))
}
