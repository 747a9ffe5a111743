// Package services sits between the dashboards and the API client.
//
// Reads never fail: on any error they log a warning and return an empty
// slice or nil so a section renders its empty state. Writes return the
// error, whose message is the server's text.
package services
