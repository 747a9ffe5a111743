package view

import "slices"

// Dialogs tracks which modal dialogs are open. Ids not registered with
// NewDialogs are ignored. At most one dialog is expected open at a time,
// though nothing prevents more.
type Dialogs struct {
	known map[string]struct{}
	open  []string // in opening order
}

func NewDialogs(ids ...string) *Dialogs {
	d := &Dialogs{known: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		d.known[id] = struct{}{}
	}
	return d
}

// Open shows dialog id on top of any other open dialog.
func (d *Dialogs) Open(id string) {
	if _, ok := d.known[id]; !ok {
		return
	}
	d.Close(id)
	d.open = append(d.open, id)
}

func (d *Dialogs) Close(id string) {
	d.open = slices.DeleteFunc(d.open, func(o string) bool { return o == id })
}

func (d *Dialogs) IsOpen(id string) bool {
	return slices.Contains(d.open, id)
}

// Dismiss handles a hit on the backdrop around dialog id, which closes it.
func (d *Dialogs) Dismiss(id string) {
	d.Close(id)
}

// CloseControl closes the dialog that encloses the close control.
func (d *Dialogs) CloseControl(id string) {
	d.Close(id)
}

// Active returns the most recently opened dialog that is still open.
func (d *Dialogs) Active() (string, bool) {
	if len(d.open) == 0 {
		return "", false
	}
	return d.open[len(d.open)-1], true
}
