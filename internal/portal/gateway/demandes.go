package gateway

import (
	"context"
	"fmt"
)

// DemandeGateway talks to /demandes.
type DemandeGateway struct {
	client *Client
}

func NewDemandeGateway(client *Client) *DemandeGateway {
	return &DemandeGateway{client: client}
}

func (g *DemandeGateway) List(ctx context.Context) ([]Demande, error) {
	var demandes []Demande
	if err := g.client.get(ctx, "/demandes", &demandes); err != nil {
		return nil, err
	}
	return demandes, nil
}

func (g *DemandeGateway) Get(ctx context.Context, id int64) (*Demande, error) {
	var d Demande
	if err := g.client.get(ctx, fmt.Sprintf("/demandes/%d", id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (g *DemandeGateway) ListMine(ctx context.Context) ([]Demande, error) {
	var demandes []Demande
	if err := g.client.get(ctx, "/demandes/me", &demandes); err != nil {
		return nil, err
	}
	return demandes, nil
}

func (g *DemandeGateway) ListByUser(ctx context.Context, userID int64) ([]Demande, error) {
	var demandes []Demande
	if err := g.client.get(ctx, fmt.Sprintf("/demandes/user/%d", userID), &demandes); err != nil {
		return nil, err
	}
	return demandes, nil
}

func (g *DemandeGateway) Count(ctx context.Context) (int64, error) {
	var response struct {
		Count int64 `json:"count"`
	}
	if err := g.client.get(ctx, "/demandes/count", &response); err != nil {
		return 0, err
	}
	return response.Count, nil
}

func (g *DemandeGateway) CountPending(ctx context.Context) (int64, error) {
	var response struct {
		Count int64 `json:"count"`
	}
	if err := g.client.get(ctx, "/demandes/count/pending", &response); err != nil {
		return 0, err
	}
	return response.Count, nil
}

func (g *DemandeGateway) ListRecent(ctx context.Context) ([]Demande, error) {
	var demandes []Demande
	if err := g.client.get(ctx, "/demandes/recent", &demandes); err != nil {
		return nil, err
	}
	return demandes, nil
}

func (g *DemandeGateway) Create(ctx context.Context, subject, description, serviceType string) (*Demande, error) {
	var d Demande
	body := map[string]string{
		"subject":     subject,
		"description": description,
		"serviceType": serviceType,
	}
	if err := g.client.post(ctx, "/demandes", body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (g *DemandeGateway) UpdateStatus(ctx context.Context, id int64, status, comment string) (*Demande, error) {
	var d Demande
	body := map[string]string{"status": status, "comment": comment}
	if err := g.client.patch(ctx, fmt.Sprintf("/demandes/%d/status", id), body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Assign sets the assignee; a nil assigneeID unassigns.
func (g *DemandeGateway) Assign(ctx context.Context, id int64, assigneeID *int64) (*Demande, error) {
	var d Demande
	body := map[string]interface{}{"assigneeId": assigneeID}
	if err := g.client.patch(ctx, fmt.Sprintf("/demandes/%d/assign", id), body, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
