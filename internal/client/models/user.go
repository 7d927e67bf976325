// Package models defines the backend resource shapes consumed by the
// UniConnect client: users, events, teams and team members. The fields mirror
// the JSON the backend produces; the client adds no invariants of its own.
package models

// User is the authenticated account profile returned by the backend at login
// and from the profile endpoint.
type User struct {
	ID         string `json:"_id"`
	Username   string `json:"username,omitempty"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	USN        string `json:"usn,omitempty"`
	Semester   int    `json:"semester,omitempty"`
	Department string `json:"department,omitempty"`
}
