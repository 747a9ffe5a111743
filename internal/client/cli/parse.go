package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/clinicdesk/internal/client/dashboard"
	"github.com/dmitrijs2005/clinicdesk/internal/common"
)

// errUsage reports a malformed command line.
func errUsage(usage string) error {
	return fmt.Errorf("usage: %s: %w", usage, common.ErrValidation)
}

// parseCommand maps one input line to a dashboard command. The rest of the
// line after the verb is the argument, so search terms and specialties may
// contain spaces.
func parseCommand(line string) (dashboard.Command, error) {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "nav", "go":
		if rest == "" {
			return nil, errUsage("nav <section>")
		}
		return dashboard.SwitchSection{Section: strings.ToLower(rest)}, nil
	case "search":
		return dashboard.SearchDoctors{Term: rest}, nil
	case "specialty":
		return dashboard.SelectSpecialty{Specialty: rest}, nil
	case "slot":
		return dashboard.SelectTimeSlot{Slot: rest}, nil
	case "add":
		return dashboard.OpenAddDoctor{}, nil
	case "delete", "rm":
		if rest == "" {
			return nil, errUsage("delete <id>")
		}
		return dashboard.DeleteDoctor{ID: rest}, nil
	case "book":
		if rest == "" {
			return nil, errUsage("book <id>")
		}
		return dashboard.OpenBooking{DoctorID: rest}, nil
	case "view", "show":
		kind, id, _ := strings.Cut(rest, " ")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, errUsage("view patient|prescription <id>")
		}
		switch strings.ToLower(kind) {
		case "patient":
			return dashboard.ViewPatient{ID: id}, nil
		case "prescription", "rx":
			return dashboard.ViewPrescription{ID: id}, nil
		}
		return nil, errUsage("view patient|prescription <id>")
	case "close", "cancel":
		return dashboard.CloseDialog{}, nil
	case "refresh", "r":
		return dashboard.Refresh{}, nil
	case "logout":
		return dashboard.Logout{}, nil
	}
	return nil, fmt.Errorf("unknown command %q: %w", verb, common.ErrUnsupported)
}
