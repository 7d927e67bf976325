package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/uniconnect/uniconnect-cli/internal/client/models"
)

// TeamAPI groups the team CRUD endpoints. All of them require an
// authenticated session; the backend scopes results to the current user.
type TeamAPI struct {
	client *Client
}

func NewTeamAPI(c *Client) *TeamAPI {
	return &TeamAPI{client: c}
}

type CreateTeamRequest struct {
	TeamName string              `json:"teamName"`
	Members  []models.TeamMember `json:"members"`
}

type UpdateTeamRequest struct {
	TeamName string              `json:"teamName"`
	Members  []models.TeamMember `json:"members"`
}

func (t *TeamAPI) ListTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	if err := t.client.Get(ctx, "/api/teams", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (t *TeamAPI) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	var team models.Team
	if err := t.client.Post(ctx, "/api/teams", req, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (t *TeamAPI) UpdateTeam(ctx context.Context, id string, req UpdateTeamRequest) (*models.Team, error) {
	var team models.Team
	path := fmt.Sprintf("/api/teams/%s", url.PathEscape(id))
	if err := t.client.Put(ctx, path, req, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (t *TeamAPI) DeleteTeam(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/teams/%s", url.PathEscape(id))
	return t.client.Delete(ctx, path, nil)
}
