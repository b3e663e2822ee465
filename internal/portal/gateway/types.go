package gateway

import "time"

// Client-side views of the backend resources. Decoded fresh on every call;
// callers own the copies they receive.

type LoginResponse struct {
	Token              string `json:"token"`
	UserType           string `json:"userType"`
	Email              string `json:"email"`
	MustChangePassword bool   `json:"mustChangePassword"`
	UserID             int64  `json:"userId"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	PhoneNumber        string `json:"phoneNumber"`
	Department         string `json:"department"`
	IsActive           bool   `json:"isActive"`
}

type User struct {
	ID                 int64     `json:"id"`
	Email              string    `json:"email"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Role               string    `json:"role"`
	IsActive           bool      `json:"isActive"`
	MustChangePassword bool      `json:"mustChangePassword"`
	PhoneNumber        string    `json:"phoneNumber"`
	Department         string    `json:"department"`
	CIN                string    `json:"cin"`
	Matricule          string    `json:"matricule"`
	CreatedAt          time.Time `json:"createdAt"`
}

type RegisteredUser struct {
	User              User   `json:"user"`
	TemporaryPassword string `json:"temporaryPassword"`
}

type Demande struct {
	ID          int64      `json:"id"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	ServiceType string     `json:"serviceType"`
	Status      string     `json:"status"`
	UserID      int64      `json:"userId"`
	AssigneeID  *int64     `json:"assigneeId"`
	Comment     string     `json:"comment"`
	ResolvedAt  *time.Time `json:"resolvedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Reclamation struct {
	ID         int64      `json:"id"`
	Subject    string     `json:"subject"`
	Content    string     `json:"content"`
	Status     string     `json:"status"`
	Priority   string     `json:"priority"`
	UserID     int64      `json:"userId"`
	AssigneeID *int64     `json:"assigneeId"`
	Response   string     `json:"response"`
	ResolvedAt *time.Time `json:"resolvedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type Article struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"imageUrl"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt"`
	AuthorID    int64      `json:"authorId"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type CatalogService struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	IsActive    bool   `json:"isActive"`
}

type MessageContact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Content   string    `json:"content"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type DashboardStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalDemandes     int64 `json:"totalDemandes"`
	PendingDemandes   int64 `json:"pendingDemandes"`
	TotalReclamations int64 `json:"totalReclamations"`
	TotalMessages     int64 `json:"totalMessages"`
	UnreadMessages    int64 `json:"unreadMessages"`
}
