// Package cli provides the interactive clinicdesk terminal client.
//
// It wires configuration, the local session store, the API services and the
// dashboards, then runs a page loop: the login page prompts for credentials
// and a dashboard page reads commands until it navigates away. A persisted,
// unexpired session resumes straight into its dashboard.
//
// Dashboard commands:
//
//	nav <section>               switch section
//	search [term]               filter doctors by name (empty clears)
//	specialty [name]            filter doctors by specialty
//	slot [time]                 filter doctors by available time (admin)
//	add                         add a doctor (admin)
//	delete <id>                 delete a doctor (admin)
//	book <id>                   book an appointment (patient)
//	view patient <id>           show a patient (admin)
//	view prescription <id>      show a prescription (patient)
//	close                       close the open dialog
//	refresh                     reload the active section
//	logout | help | exit
//
// The loop is started via App.Run, which blocks until the user exits or the
// context is cancelled.
package cli
