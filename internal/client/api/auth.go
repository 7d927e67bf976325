package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/uniconnect/uniconnect-cli/internal/client/models"
)

// AuthAPI groups the authentication endpoints.
type AuthAPI struct {
	client *Client
}

func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{client: c}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the authenticated profile together with the bearer
// credential for subsequent requests.
type LoginResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
	Token   string      `json:"token"`
}

type SignupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// MessageResponse is the plain acknowledgement most auth endpoints return.
type MessageResponse struct {
	Message string `json:"message"`
}

// ForgotPasswordResponse acknowledges the reset request. DevCode is only
// populated by development-mode backends that skip sending email.
type ForgotPasswordResponse struct {
	Message string `json:"message"`
	DevCode string `json:"devCode,omitempty"`
}

func (a *AuthAPI) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := a.client.Post(ctx, "/api/users/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) Signup(ctx context.Context, req SignupRequest) (*MessageResponse, error) {
	var out MessageResponse
	if err := a.client.Post(ctx, "/api/users/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) (*ForgotPasswordResponse, error) {
	var out ForgotPasswordResponse
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	if err := a.client.Post(ctx, "/api/users/forgot-password", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword consumes the reset token mailed to the user. The token rides
// in the path, the new password in the body.
func (a *AuthAPI) ResetPassword(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	var out MessageResponse
	body := struct {
		NewPassword string `json:"newPassword"`
	}{NewPassword: newPassword}
	path := fmt.Sprintf("/api/users/reset-password/%s", url.PathEscape(token))
	if err := a.client.Post(ctx, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Activate confirms a freshly registered account via its activation token.
func (a *AuthAPI) Activate(ctx context.Context, token string) (*MessageResponse, error) {
	var out MessageResponse
	path := fmt.Sprintf("/api/users/activate/%s", url.PathEscape(token))
	if err := a.client.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
