// Package dashboard holds the role-specific page controllers and the login
// controller.
//
// A page is driven by command values: the terminal layer parses a line into
// a Command and passes it to Handle, which performs at most one API round
// trip per step and re-renders the active section. Pages never talk to the
// terminal directly; alerts and confirmations go through UI.
package dashboard
