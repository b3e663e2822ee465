package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aosmicepp/platform/internal/rbac"
)

// Account is the authentication view of a user record: just enough to verify
// credentials and mint a token.
type Account struct {
	ID                 int64
	Email              string
	PasswordHash       string
	FirstName          string
	LastName           string
	Role               rbac.Role
	IsActive           bool
	MustChangePassword bool
	PhoneNumber        string
	Department         string
}

// Claims carried inside issued tokens. Role travels in its prefixed
// authority form ("ROLE_ADMIN"); consumers normalize it on the way in.
type Claims struct {
	UserID             string `json:"user_id"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	MustChangePassword bool   `json:"must_change_password"`
	jwt.RegisteredClaims
}

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*LoginResponse, error)
	ChangePassword(userID int64, dto ChangePasswordDTO) error
	ValidateToken(tokenString string) (*Claims, error)
	GetAccount(userID int64) (*Account, error)
}

type RepositoryAPI interface {
	GetByEmail(email string) (*Account, error)
	GetByID(userID int64) (*Account, error)
	UpdatePassword(userID int64, passwordHash string, mustChange bool) error
}

type TokenGeneratorAPI interface {
	Generate(account *Account) (string, error)
	Validate(tokenString string) (*Claims, error)
}

// JWTTokenGenerator issues and validates HS256 tokens.
type JWTTokenGenerator struct {
	Secret        []byte
	TokenDuration time.Duration
}

func NewJWTTokenGenerator(secret string, duration time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		Secret:        []byte(secret),
		TokenDuration: duration,
	}
}
