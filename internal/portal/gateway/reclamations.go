package gateway

import (
	"context"
	"fmt"
)

// ReclamationGateway talks to /reclamations.
type ReclamationGateway struct {
	client *Client
}

func NewReclamationGateway(client *Client) *ReclamationGateway {
	return &ReclamationGateway{client: client}
}

func (g *ReclamationGateway) List(ctx context.Context) ([]Reclamation, error) {
	var reclamations []Reclamation
	if err := g.client.get(ctx, "/reclamations", &reclamations); err != nil {
		return nil, err
	}
	return reclamations, nil
}

func (g *ReclamationGateway) Get(ctx context.Context, id int64) (*Reclamation, error) {
	var rec Reclamation
	if err := g.client.get(ctx, fmt.Sprintf("/reclamations/%d", id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (g *ReclamationGateway) Create(ctx context.Context, subject, content, priority string) (*Reclamation, error) {
	var rec Reclamation
	body := map[string]string{
		"subject":  subject,
		"content":  content,
		"priority": priority,
	}
	if err := g.client.post(ctx, "/reclamations", body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (g *ReclamationGateway) Assign(ctx context.Context, id, userID int64) (*Reclamation, error) {
	var rec Reclamation
	if err := g.client.patch(ctx, fmt.Sprintf("/reclamations/%d/assign/%d", id, userID), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (g *ReclamationGateway) Unassign(ctx context.Context, id int64) (*Reclamation, error) {
	var rec Reclamation
	if err := g.client.patch(ctx, fmt.Sprintf("/reclamations/%d/unassign", id), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (g *ReclamationGateway) UpdateStatus(ctx context.Context, id int64, status, response string) (*Reclamation, error) {
	var rec Reclamation
	body := map[string]string{"status": status, "response": response}
	if err := g.client.patch(ctx, fmt.Sprintf("/reclamations/%d/status", id), body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
