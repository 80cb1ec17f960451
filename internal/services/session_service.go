package services

import (
	"errors"
	"fmt"

	"github.com/thereayou/courier-lite/internal/database"
	"github.com/thereayou/courier-lite/internal/models"
	"github.com/thereayou/courier-lite/internal/presence"
	"github.com/thereayou/courier-lite/pkg/auth"
)

type AccountStore interface {
	CreateAccount(account *models.Account) error
	GetAccount(username string) (*models.Account, error)
	RenameAccount(oldUsername, newUsername, newPassword string) error
	ListAccounts() ([]models.Account, error)
}

type AccountStatus struct {
	Username string `json:"username"`
	Online   bool   `json:"online"`
}

// SessionService implements register/login/logout/update semantics over
// the account store and the presence registry.
type SessionService struct {
	accounts AccountStore
	registry *presence.Registry
	scheme   auth.PasswordScheme
}

func NewSessionService(accounts AccountStore, registry *presence.Registry, scheme auth.PasswordScheme) *SessionService {
	return &SessionService{
		accounts: accounts,
		registry: registry,
		scheme:   scheme,
	}
}

func (s *SessionService) Register(username, password string) error {
	encoded, err := s.scheme.Encode(password)
	if err != nil {
		return fmt.Errorf("encode password: %w", err)
	}
	return s.accounts.CreateAccount(&models.Account{Username: username, Password: encoded})
}

// Login rejects an already-online user before credentials are looked
// at. The early IsOnline check only short-circuits the store round
// trip; the race between check and insert is closed by the registry's
// atomic TryLogin.
func (s *SessionService) Login(username, password string) error {
	if s.registry.IsOnline(username) {
		return ErrAlreadyOnline
	}

	account, err := s.accounts.GetAccount(username)
	if err != nil {
		if errors.Is(err, database.ErrAccountNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if !s.scheme.Matches(account.Password, password) {
		return ErrInvalidCredentials
	}

	if !s.registry.TryLogin(username) {
		return ErrAlreadyOnline
	}
	return nil
}

// Logout always succeeds, whether or not the user was online.
func (s *SessionService) Logout(username string) {
	s.registry.Logout(username)
}

// UpdateAccount renames an account and carries any presence entry
// forward so an online user's session survives the identity change.
// On failure presence is left untouched.
func (s *SessionService) UpdateAccount(oldUsername, newUsername, newPassword string) error {
	encoded, err := s.scheme.Encode(newPassword)
	if err != nil {
		return fmt.Errorf("encode password: %w", err)
	}

	if err := s.accounts.RenameAccount(oldUsername, newUsername, encoded); err != nil {
		if errors.Is(err, database.ErrAccountNotFound) || errors.Is(err, database.ErrAccountExists) {
			return ErrUpdateFailed
		}
		return err
	}

	s.registry.Rename(oldUsername, newUsername)
	return nil
}

// ListAccounts joins all known accounts with one presence snapshot.
func (s *SessionService) ListAccounts() ([]AccountStatus, error) {
	accounts, err := s.accounts.ListAccounts()
	if err != nil {
		return nil, err
	}

	online := make(map[string]struct{})
	for _, username := range s.registry.Snapshot() {
		online[username] = struct{}{}
	}

	statuses := make([]AccountStatus, len(accounts))
	for i, account := range accounts {
		_, ok := online[account.Username]
		statuses[i] = AccountStatus{Username: account.Username, Online: ok}
	}
	return statuses, nil
}

// OnlineUsers returns the currently online usernames in ascending order.
func (s *SessionService) OnlineUsers() []string {
	return s.registry.Snapshot()
}
