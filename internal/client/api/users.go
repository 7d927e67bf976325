package api

import (
	"context"

	"github.com/uniconnect/uniconnect-cli/internal/client/models"
)

// UserAPI groups the profile endpoints.
type UserAPI struct {
	client *Client
}

func NewUserAPI(c *Client) *UserAPI {
	return &UserAPI{client: c}
}

// Me fetches the profile of the currently authenticated user.
func (u *UserAPI) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := u.client.Get(ctx, "/api/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
