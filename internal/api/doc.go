// Package api provides HTTP handlers for the API. Handlers decode and
// validate requests, delegate to the service layer, and translate service
// errors into sanitized JSON responses.
package api
