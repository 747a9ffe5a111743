package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dmitrijs2005/clinicdesk/internal/client/view"
)

// terminalUI shows acknowledgments inline and asks confirmations on the
// same input stream as the command loop.
type terminalUI struct {
	reader *bufio.Reader
	out    io.Writer
	theme  *view.Theme
}

func (u *terminalUI) Alert(msg string) {
	fmt.Fprintf(u.out, "%s %s\n", u.theme.Label("!"), msg)
}

// Confirm treats unreadable input as no.
func (u *terminalUI) Confirm(msg string) bool {
	ok, err := GetConfirmation(u.reader, msg, u.out)
	return err == nil && ok
}
