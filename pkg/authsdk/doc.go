// Package authsdk provides the request/response types for the authd HTTP API
// together with their validation rules, and a small Go client for calling the
// service. The server handlers decode into these same types so the wire
// contract lives in exactly one place.
package authsdk
