package gateway

import (
	"context"
	"fmt"
)

// NewsGateway talks to the public and admin news endpoints.
type NewsGateway struct {
	client *Client
}

func NewNewsGateway(client *Client) *NewsGateway {
	return &NewsGateway{client: client}
}

func (g *NewsGateway) ListPublished(ctx context.Context) ([]Article, error) {
	var articles []Article
	if err := g.client.get(ctx, "/news", &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (g *NewsGateway) GetPublished(ctx context.Context, id int64) (*Article, error) {
	var a Article
	if err := g.client.get(ctx, fmt.Sprintf("/news/%d", id), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *NewsGateway) ListAll(ctx context.Context) ([]Article, error) {
	var articles []Article
	if err := g.client.get(ctx, "/news/admin", &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (g *NewsGateway) Create(ctx context.Context, title, summary, content, imageURL string) (*Article, error) {
	var a Article
	body := map[string]string{
		"title":    title,
		"summary":  summary,
		"content":  content,
		"imageUrl": imageURL,
	}
	if err := g.client.post(ctx, "/news/admin", body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *NewsGateway) Update(ctx context.Context, id int64, title, summary, content, imageURL string) (*Article, error) {
	var a Article
	body := map[string]string{
		"title":    title,
		"summary":  summary,
		"content":  content,
		"imageUrl": imageURL,
	}
	if err := g.client.put(ctx, fmt.Sprintf("/news/admin/%d", id), body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *NewsGateway) TogglePublished(ctx context.Context, id int64) (*Article, error) {
	var a Article
	if err := g.client.put(ctx, fmt.Sprintf("/news/admin/%d/toggle-published", id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (g *NewsGateway) Delete(ctx context.Context, id int64) error {
	return g.client.delete(ctx, fmt.Sprintf("/news/admin/%d", id))
}

// CatalogGateway talks to /services.
type CatalogGateway struct {
	client *Client
}

func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

func (g *CatalogGateway) ListActive(ctx context.Context) ([]CatalogService, error) {
	var services []CatalogService
	if err := g.client.get(ctx, "/services", &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (g *CatalogGateway) ListAll(ctx context.Context) ([]CatalogService, error) {
	var services []CatalogService
	if err := g.client.get(ctx, "/services/admin", &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (g *CatalogGateway) Get(ctx context.Context, id int64) (*CatalogService, error) {
	var cs CatalogService
	if err := g.client.get(ctx, fmt.Sprintf("/services/%d", id), &cs); err != nil {
		return nil, err
	}
	return &cs, nil
}

func (g *CatalogGateway) Types(ctx context.Context) ([]string, error) {
	var types []string
	if err := g.client.get(ctx, "/services/types", &types); err != nil {
		return nil, err
	}
	return types, nil
}

func (g *CatalogGateway) Create(ctx context.Context, name, description, serviceType string) (*CatalogService, error) {
	var cs CatalogService
	body := map[string]string{
		"name":        name,
		"description": description,
		"type":        serviceType,
	}
	if err := g.client.post(ctx, "/services/admin", body, &cs); err != nil {
		return nil, err
	}
	return &cs, nil
}

func (g *CatalogGateway) Update(ctx context.Context, id int64, name, description, serviceType string) (*CatalogService, error) {
	var cs CatalogService
	body := map[string]string{
		"name":        name,
		"description": description,
		"type":        serviceType,
	}
	if err := g.client.put(ctx, fmt.Sprintf("/services/admin/%d", id), body, &cs); err != nil {
		return nil, err
	}
	return &cs, nil
}

func (g *CatalogGateway) ToggleStatus(ctx context.Context, id int64) (*CatalogService, error) {
	var cs CatalogService
	if err := g.client.put(ctx, fmt.Sprintf("/services/admin/%d/toggle-status", id), nil, &cs); err != nil {
		return nil, err
	}
	return &cs, nil
}

func (g *CatalogGateway) Delete(ctx context.Context, id int64) error {
	return g.client.delete(ctx, fmt.Sprintf("/services/admin/%d", id))
}

// MessageGateway talks to /messages.
type MessageGateway struct {
	client *Client
}

func NewMessageGateway(client *Client) *MessageGateway {
	return &MessageGateway{client: client}
}

func (g *MessageGateway) Submit(ctx context.Context, name, email, subject, content string) (*MessageContact, error) {
	var m MessageContact
	body := map[string]string{
		"name":    name,
		"email":   email,
		"subject": subject,
		"content": content,
	}
	if err := g.client.post(ctx, "/messages", body, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (g *MessageGateway) List(ctx context.Context) ([]MessageContact, error) {
	var messages []MessageContact
	if err := g.client.get(ctx, "/messages", &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (g *MessageGateway) MarkRead(ctx context.Context, id int64) (*MessageContact, error) {
	var m MessageContact
	if err := g.client.patch(ctx, fmt.Sprintf("/messages/%d/read", id), nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DashboardGateway talks to /dashboard.
type DashboardGateway struct {
	client *Client
}

func NewDashboardGateway(client *Client) *DashboardGateway {
	return &DashboardGateway{client: client}
}

func (g *DashboardGateway) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := g.client.get(ctx, "/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
