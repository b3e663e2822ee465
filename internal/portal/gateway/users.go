package gateway

import (
	"context"
	"fmt"
)

// UserGateway talks to /users. Its errors come back in French, ready for
// the admin screens.
type UserGateway struct {
	client *Client
}

func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

func (g *UserGateway) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := g.client.get(ctx, "/users", &users); err != nil {
		return nil, localizeUserError(err)
	}
	return users, nil
}

func (g *UserGateway) Get(ctx context.Context, id int64) (*User, error) {
	var u User
	if err := g.client.get(ctx, fmt.Sprintf("/users/%d", id), &u); err != nil {
		return nil, localizeUserError(err)
	}
	return &u, nil
}

func (g *UserGateway) Register(ctx context.Context, payload map[string]string) (*RegisteredUser, error) {
	var registered RegisteredUser
	if err := g.client.post(ctx, "/users/register", payload, &registered); err != nil {
		return nil, localizeUserError(err)
	}
	return &registered, nil
}

func (g *UserGateway) Update(ctx context.Context, id int64, payload map[string]interface{}) (*User, error) {
	var u User
	if err := g.client.put(ctx, fmt.Sprintf("/users/%d", id), payload, &u); err != nil {
		return nil, localizeUserError(err)
	}
	return &u, nil
}

func (g *UserGateway) ToggleStatus(ctx context.Context, id int64) (*User, error) {
	var u User
	if err := g.client.put(ctx, fmt.Sprintf("/users/%d/toggle-status", id), nil, &u); err != nil {
		return nil, localizeUserError(err)
	}
	return &u, nil
}

func (g *UserGateway) Count(ctx context.Context) (int64, error) {
	var response struct {
		Count int64 `json:"count"`
	}
	if err := g.client.get(ctx, "/users/count", &response); err != nil {
		return 0, localizeUserError(err)
	}
	return response.Count, nil
}

func (g *UserGateway) ListByRole(ctx context.Context, role string) ([]User, error) {
	var users []User
	if err := g.client.get(ctx, "/users/role/"+role, &users); err != nil {
		return nil, localizeUserError(err)
	}
	return users, nil
}

func (g *UserGateway) ListRecent(ctx context.Context) ([]User, error) {
	var users []User
	if err := g.client.get(ctx, "/users/recent", &users); err != nil {
		return nil, localizeUserError(err)
	}
	return users, nil
}
