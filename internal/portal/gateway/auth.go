package gateway

import (
	"context"
)

// AuthGateway talks to /auth.
type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

func (g *AuthGateway) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var response LoginResponse
	body := map[string]string{"email": email, "password": password}
	if err := g.client.post(ctx, "/auth/login", body, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (g *AuthGateway) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	body := map[string]string{
		"currentPassword": current,
		"newPassword":     newPassword,
		"confirmPassword": confirm,
	}
	return g.client.post(ctx, "/auth/change-password", body, nil)
}
