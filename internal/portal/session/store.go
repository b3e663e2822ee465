package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/aosmicepp/platform/internal"
	"github.com/aosmicepp/platform/internal/portal/gateway"
	"github.com/aosmicepp/platform/internal/rbac"
)

const defaultLanguage = "fr"

// Identity is the signed-in user as the portal sees it. The role is stored
// normalized; the prefixed authority form never survives past login.
type Identity struct {
	UserID      int64  `json:"userId"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phoneNumber"`
	Department  string `json:"department"`
	IsActive    bool   `json:"isActive"`
}

// AuthAPI is the slice of the auth gateway the store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*gateway.LoginResponse, error)
}

// Store owns the session record: the bearer token, the identity, the
// must-change-password flag and the language preference. The record is
// rehydrated from storage at construction and every mutation is written
// back atomically. An identity is only ever held alongside an unexpired
// token.
type Store struct {
	storage Storage
	auth    AuthAPI
	logger  *slog.Logger

	mu         sync.RWMutex
	token      string
	identity   *Identity
	mustChange bool
	language   string
}

func NewStore(storage Storage, auth AuthAPI, logger *slog.Logger) (*Store, error) {
	s := &Store{
		storage:  storage,
		auth:     auth,
		logger:   logger,
		language: defaultLanguage,
	}
	if err := s.rehydrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) rehydrate() error {
	if lang, found, err := s.storage.Get(KeyLanguage); err != nil {
		return err
	} else if found && lang != "" {
		s.language = lang
	}

	token, found, err := s.storage.Get(KeyToken)
	if err != nil {
		return err
	}
	if !found || token == "" {
		return nil
	}

	if TokenExpired(token) {
		s.logger.Info("stored token expired, clearing session")
		return s.clear()
	}

	rawUser, found, err := s.storage.Get(KeyUser)
	if err != nil {
		return err
	}
	if !found {
		// A token without an identity is a broken record; drop it.
		return s.clear()
	}

	var identity Identity
	if err := json.Unmarshal([]byte(rawUser), &identity); err != nil {
		s.logger.Warn("stored identity is unreadable, clearing session", "error", err)
		return s.clear()
	}

	mustChange := false
	if raw, found, err := s.storage.Get(KeyMustChangePassword); err != nil {
		return err
	} else if found {
		mustChange, _ = strconv.ParseBool(raw)
	}

	s.token = token
	s.identity = &identity
	s.mustChange = mustChange
	return nil
}

// Login authenticates against the backend and persists the session record.
func (s *Store) Login(ctx context.Context, email, password string) (*Identity, error) {
	response, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, s.mapLoginError(err)
	}

	identity := &Identity{
		UserID:      response.UserID,
		Email:       response.Email,
		FirstName:   response.FirstName,
		LastName:    response.LastName,
		Role:        rbac.ParseRole(response.UserType).String(),
		PhoneNumber: response.PhoneNumber,
		Department:  response.Department,
		IsActive:    response.IsActive,
	}

	rawUser, err := json.Marshal(identity)
	if err != nil {
		return nil, internal.NewInternalError("failed to encode identity", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.storage.SetAll(map[string]string{
		KeyToken:              response.Token,
		KeyUser:               string(rawUser),
		KeyMustChangePassword: strconv.FormatBool(response.MustChangePassword),
		KeyLanguage:           s.language,
	})
	if err != nil {
		return nil, internal.NewInternalError("failed to persist session", err)
	}

	s.token = response.Token
	s.identity = identity
	s.mustChange = response.MustChangePassword

	s.logger.Info("session opened", "user_id", identity.UserID, "role", identity.Role)
	copied := *identity
	return &copied, nil
}

func (s *Store) mapLoginError(err error) error {
	apiErr, ok := gateway.AsAPIError(err)
	if !ok {
		return err
	}

	if apiErr.Code == string(internal.ErrCodeTokenExpired) {
		_ = s.Logout()
		return internal.ErrTokenExpired
	}

	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return internal.ErrInvalidCredentials
	case http.StatusBadRequest:
		if apiErr.Message != "" {
			return internal.NewValidationError(apiErr.Message, internal.ErrCodeValidationFailed)
		}
		return internal.NewValidationError("invalid login request", internal.ErrCodeValidationFailed)
	}
	return err
}

// Logout drops the session record. The language preference survives.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clear()
}

func (s *Store) clear() error {
	if err := s.storage.DeleteAll(KeyToken, KeyUser, KeyMustChangePassword); err != nil {
		return err
	}
	s.token = ""
	s.identity = nil
	s.mustChange = false
	return nil
}

// IsAuthenticated reports whether a live, unexpired session exists.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && !TokenExpired(s.token)
}

// CurrentUser returns a copy of the signed-in identity, or nil.
func (s *Store) CurrentUser() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	copied := *s.identity
	return &copied
}

func (s *Store) MustChangePassword() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mustChange
}

// ClearMustChangePassword persists the flag after a successful password
// change.
func (s *Store) ClearMustChangePassword() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.SetAll(map[string]string{KeyMustChangePassword: "false"}); err != nil {
		return err
	}
	s.mustChange = false
	return nil
}

// HasRole reports whether the signed-in user carries exactly this role.
// The argument may arrive in either the plain or the prefixed form.
func (s *Store) HasRole(role string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return false
	}
	return rbac.Matches(rbac.ParseRole(s.identity.Role), rbac.ParseRole(role))
}

// HasAnyRole reports whether the user matches at least one required role.
// An empty requirement means every caller passes.
func (s *Store) HasAnyRole(roles ...string) bool {
	if len(roles) == 0 {
		return true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return false
	}

	required := make([]rbac.Role, 0, len(roles))
	for _, r := range roles {
		required = append(required, rbac.ParseRole(r))
	}
	return rbac.MatchesAny(rbac.ParseRole(s.identity.Role), required)
}

// Token hands the raw bearer token to the request authenticator. Empty
// when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

func (s *Store) SetLanguage(lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.SetAll(map[string]string{KeyLanguage: lang}); err != nil {
		return err
	}
	s.language = lang
	return nil
}
