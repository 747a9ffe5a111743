// Package api is the HTTP client of the clinic REST API.
//
// Every method performs exactly one round trip. Non-2xx responses come back
// as *Error carrying the status and the response body text; transport
// failures wrap common.ErrUnavailable. There are no retries and no caching.
package api
