package dashboard

import (
	"fmt"
	"slices"

	"github.com/dmitrijs2005/clinicdesk/internal/common"
)

// Nav keeps exactly one section active.
type Nav struct {
	sections []string
	active   string
}

// NewNav activates the first section.
func NewNav(sections ...string) *Nav {
	n := &Nav{sections: sections}
	if len(sections) > 0 {
		n.active = sections[0]
	}
	return n
}

// Switch makes name the only active section. An unknown name leaves the
// current section active.
func (n *Nav) Switch(name string) error {
	if !slices.Contains(n.sections, name) {
		return fmt.Errorf("%q: %w", name, common.ErrUnknownSection)
	}
	n.active = name
	return nil
}

func (n *Nav) Active() string { return n.active }

func (n *Nav) IsActive(name string) bool { return n.active == name }

func (n *Nav) Sections() []string {
	return slices.Clone(n.sections)
}
