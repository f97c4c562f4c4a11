// Package auth registers users, verifies their credentials and keeps track
// of the current user in a key-value store. It also issues and validates the
// access tokens used by the HTTP API.
package auth
