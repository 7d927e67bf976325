package models

// Event is a community event as listed by the backend.
type Event struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Date         string   `json:"date,omitempty"`
	Time         string   `json:"time,omitempty"`
	Location     string   `json:"location,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Attendees    int      `json:"attendees,omitempty"`
	MaxAttendees int      `json:"maxAttendees,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}
