package api

import (
	"context"
	"net/http"

	"github.com/jrsteele09/dept-console/users"
	"golang.org/x/oauth2"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string      `json:"token"`
	User    *users.User `json:"user"`
	Message string      `json:"message,omitempty"`
}

type ProfileResponse struct {
	User    *users.User `json:"user"`
	Message string      `json:"message,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Login submits credentials. It is the only unauthenticated call.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, c.httpClient, http.MethodPost, LoginPath, LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Profile fetches the identity the token belongs to.
func (c *Client) Profile(ctx context.Context, src oauth2.TokenSource) (*users.User, error) {
	var resp ProfileResponse
	if err := c.do(ctx, c.authorized(src), http.MethodGet, ProfilePath, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, src oauth2.TokenSource, update users.ProfileUpdate) (*ProfileResponse, error) {
	var resp ProfileResponse
	if err := c.do(ctx, c.authorized(src), http.MethodPut, ProfilePath, update, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ChangePassword(ctx context.Context, src oauth2.TokenSource, current, next string) (*MessageResponse, error) {
	var resp MessageResponse
	body := ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	if err := c.do(ctx, c.authorized(src), http.MethodPost, ChangePasswordPath, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
