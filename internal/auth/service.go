// Package auth maintains the local login registry and the persisted
// session. Users live in the key-value store, encrypted at rest, not in
// the ledger database.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/famledger/famledger/internal/kvstore"
	"github.com/famledger/famledger/internal/models"
)

// Key-value store keys. The settings key belongs to the config package and
// is never touched here; logout must leave it alone.
const (
	usersKey   = "famledger-users"
	sessionKey = "famledger-session"
)

// Bootstrap admin account. A well-known default credential is a standing
// weakness; a forced first-login password change would fix it.
const (
	bootstrapAdminID       = "family-admin"
	bootstrapAdminUsername = "Admin"
	bootstrapAdminPassword = "Admin"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// sessionRecord is the JSON blob persisted under the session key. The
// token carries the authoritative expiry; CreatedAt is informational.
type sessionRecord struct {
	UserID    string `json:"userId"`
	Token     string `json:"token"`
	CreatedAt string `json:"createdAt"`
}

// Service manages the user registry and the current session.
type Service struct {
	kv       *kvstore.Store
	sessions *SessionManager
	logger   *slog.Logger

	users   []models.User
	current *models.User
}

// NewService loads the registry, creates the bootstrap admin if the
// registry is empty, and restores any unexpired session.
//
// A registry that cannot be decrypted is treated as empty: the data is
// lost and a fresh admin account is created. This mirrors the soft-failure
// policy of the rest of the app and is logged loudly.
func NewService(kv *kvstore.Store, logger *slog.Logger) (*Service, error) {
	s := &Service{
		kv:       kv,
		sessions: NewSessionManager(),
		logger:   logger,
	}

	s.loadUsers()
	if err := s.bootstrapAdmin(); err != nil {
		return nil, err
	}
	s.restoreSession()
	return s, nil
}

func (s *Service) loadUsers() {
	data, err := s.kv.Get(usersKey)
	if errors.Is(err, kvstore.ErrNoKey) {
		return
	}
	if err != nil {
		s.logger.Warn("failed to read user registry, starting empty", "error", err)
		return
	}

	plaintext, err := decrypt(string(data))
	if err != nil {
		s.logger.Warn("failed to decrypt user registry, starting empty", "error", err)
		return
	}
	if err := json.Unmarshal(plaintext, &s.users); err != nil {
		s.logger.Warn("failed to parse user registry, starting empty", "error", err)
		s.users = nil
	}
}

func (s *Service) saveUsers() error {
	plaintext, err := json.Marshal(s.users)
	if err != nil {
		return fmt.Errorf("failed to serialize users: %w", err)
	}
	encrypted, err := encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt users: %w", err)
	}
	if err := s.kv.Set(usersKey, []byte(encrypted)); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

func (s *Service) bootstrapAdmin() error {
	for _, u := range s.users {
		if u.Username == bootstrapAdminUsername {
			return nil
		}
	}

	admin := models.User{
		ID:           bootstrapAdminID,
		Username:     bootstrapAdminUsername,
		PasswordHash: HashPassword(bootstrapAdminPassword),
		Role:         models.RoleAdmin,
		Profile: models.Profile{
			Name:   "Family Administrator",
			Email:  "family@famledger.local",
			Avatar: "https://ui-avatars.com/api/?name=Family+Administrator&background=2563eb&color=fff",
		},
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	s.users = append(s.users, admin)
	if err := s.saveUsers(); err != nil {
		return err
	}
	s.logger.Info("bootstrap admin account created", "username", admin.Username)
	return nil
}

func (s *Service) restoreSession() {
	data, err := s.kv.Get(sessionKey)
	if err != nil {
		return
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Debug("discarding unreadable session", "error", err)
		_ = s.kv.Delete(sessionKey)
		return
	}

	userID, err := s.sessions.Validate(rec.Token)
	if err != nil {
		s.logger.Debug("discarding expired session", "error", err)
		_ = s.kv.Delete(sessionKey)
		return
	}

	if u := s.findUser(userID); u != nil {
		s.current = u
		s.logger.Info("session restored", "username", u.Username)
	}
}

func (s *Service) saveSession(userID string) error {
	token, err := s.sessions.Issue(userID)
	if err != nil {
		return err
	}
	rec := sessionRecord{
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	return s.kv.Set(sessionKey, data)
}

func (s *Service) findUser(id string) *models.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

// Login authenticates by exact username match and password hash
// comparison. The failure reasons are distinguishable (ErrUserNotFound vs
// ErrInvalidPassword), which leaks account existence to the caller; the
// original behaved the same way.
func (s *Service) Login(username, password string) (*models.User, error) {
	var user *models.User
	for i := range s.users {
		if s.users[i].Username == username {
			user = &s.users[i]
			break
		}
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !verifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidPassword
	}

	user.LastLogin = time.Now().Format(time.RFC3339)
	s.current = user
	if err := s.saveUsers(); err != nil {
		return nil, err
	}
	if err := s.saveSession(user.ID); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "username", user.Username)
	return user, nil
}

// Logout clears only the session record; the registry and settings persist.
func (s *Service) Logout() error {
	s.current = nil
	if err := s.kv.Delete(sessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Info("user logged out")
	return nil
}

// CurrentUser returns the logged-in user, or nil.
func (s *Service) CurrentUser() *models.User {
	return s.current
}

// IsAuthenticated reports whether a user is logged in.
func (s *Service) IsAuthenticated() bool {
	return s.current != nil
}

// IsAdmin reports whether the logged-in user has the admin role.
func (s *Service) IsAdmin() bool {
	return s.current != nil && s.current.Role == models.RoleAdmin
}

// ChangePassword verifies the current password before accepting the new
// one. No strength or reuse policy is applied at this layer.
func (s *Service) ChangePassword(currentPassword, newPassword string) error {
	if s.current == nil {
		return ErrNotAuthenticated
	}
	if !verifyPassword(currentPassword, s.current.PasswordHash) {
		return fmt.Errorf("current password: %w", ErrInvalidPassword)
	}

	s.current.PasswordHash = HashPassword(newPassword)
	if err := s.saveUsers(); err != nil {
		return err
	}
	s.logger.Info("password changed", "username", s.current.Username)
	return nil
}

// UpdateProfile merges the non-empty fields of p into the current user's
// profile and persists the registry.
func (s *Service) UpdateProfile(p models.Profile) error {
	if s.current == nil {
		return ErrNotAuthenticated
	}

	merged := s.current.Profile
	if p.Name != "" {
		merged.Name = p.Name
	}
	if p.Email != "" {
		merged.Email = p.Email
	}
	if p.Phone != "" {
		merged.Phone = p.Phone
	}
	if p.Address != "" {
		merged.Address = p.Address
	}
	if p.Avatar != "" {
		merged.Avatar = p.Avatar
	}
	s.current.Profile = merged

	return s.saveUsers()
}
