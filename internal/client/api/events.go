package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/uniconnect/uniconnect-cli/internal/client/models"
)

// EventAPI groups the event endpoints.
type EventAPI struct {
	client *Client
}

func NewEventAPI(c *Client) *EventAPI {
	return &EventAPI{client: c}
}

func (e *EventAPI) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := e.client.Get(ctx, "/api/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (e *EventAPI) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	path := fmt.Sprintf("/api/events/%s", url.PathEscape(id))
	if err := e.client.Get(ctx, path, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// RegisterTeam enters one of the current user's teams into an event.
func (e *EventAPI) RegisterTeam(ctx context.Context, eventID, teamID string) (*MessageResponse, error) {
	var out MessageResponse
	body := struct {
		TeamID string `json:"teamId"`
	}{TeamID: teamID}
	path := fmt.Sprintf("/api/events/%s/register", url.PathEscape(eventID))
	if err := e.client.Post(ctx, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
