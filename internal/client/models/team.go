package models

// TeamMember is a single participant of a team.
type TeamMember struct {
	FullName        string `json:"fullName"`
	USN             string `json:"usn"`
	CurrentSemester int    `json:"currentSemester"`
	Department      string `json:"department"`
}

// Team is a team owned by the current user.
type Team struct {
	ID        string       `json:"_id"`
	TeamName  string       `json:"teamName"`
	Members   []TeamMember `json:"members"`
	CreatedAt string       `json:"createdAt,omitempty"`
}
