// Package devauth is a small authentication backend for local development and
// end-to-end tests. It speaks the same wire contract the gateway's client
// expects from a production backend.
package devauth

import (
	"os"
	"strings"
	"sync"

	"loginflow/internal/domain/auth"
	"loginflow/internal/pkg/errs"
	"loginflow/internal/pkg/password"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         string
	AvatarURL    *string
	PasswordHash string
	Disabled     bool
	// RedirectURL, when set, is returned to the client after login.
	RedirectURL string
}

func (u *User) Public() auth.User {
	return auth.User{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}

// SeedUser is one entry of the users file. Password may be plaintext or a
// bcrypt hash.
type SeedUser struct {
	ID          string  `yaml:"id"`
	Email       string  `yaml:"email"`
	Name        string  `yaml:"name"`
	Role        string  `yaml:"role"`
	AvatarURL   *string `yaml:"avatar_url"`
	Password    string  `yaml:"password"`
	Disabled    bool    `yaml:"disabled"`
	RedirectURL string  `yaml:"redirect_url"`
}

type seedFile struct {
	Users []SeedUser `yaml:"users"`
}

// DefaultSeedUsers is used when no users file is configured.
func DefaultSeedUsers() []SeedUser {
	return []SeedUser{
		{Email: "demo@example.com", Name: "Demo User", Role: "member", Password: "password123"},
		{Email: "admin@example.com", Name: "Admin User", Role: "admin", Password: "admin-password", RedirectURL: "/settings"},
		{Email: "disabled@example.com", Name: "Disabled User", Role: "member", Password: "password123", Disabled: true},
	}
}

type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*User
}

// NewStore hashes plaintext seed passwords with cost.
func NewStore(seeds []SeedUser, cost int) (*Store, error) {
	s := &Store{byEmail: make(map[string]*User, len(seeds))}
	for i, seed := range seeds {
		u, err := newUser(seed, cost)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "seed user %d", i), errs.ErrSeedLoadFailed)
		}
		if _, dup := s.byEmail[u.Email]; dup {
			return nil, errs.Mark(errs.Wrapf(errs.New("duplicate email"), "seed user %d", i), errs.ErrSeedLoadFailed)
		}
		s.byEmail[u.Email] = u
	}
	return s, nil
}

// LoadStore reads users from a YAML file, or the defaults when path is empty.
func LoadStore(path string, cost int) (*Store, error) {
	if path == "" {
		return NewStore(DefaultSeedUsers(), cost)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read users file"), errs.ErrSeedLoadFailed)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "parse users file"), errs.ErrSeedLoadFailed)
	}
	return NewStore(f.Users, cost)
}

func newUser(seed SeedUser, cost int) (*User, error) {
	email := auth.SanitizeEmail(seed.Email)
	if fe := auth.ValidateField(auth.FieldEmail, email); fe != nil {
		return nil, fe
	}
	if strings.TrimSpace(seed.Password) == "" {
		return nil, errs.New("password is required")
	}

	id := uuid.New()
	if seed.ID != "" {
		parsed, err := uuid.Parse(seed.ID)
		if err != nil {
			return nil, errs.Wrap(err, "parse id")
		}
		id = parsed
	}

	hash := seed.Password
	if !password.IsHash(hash) {
		var err error
		if hash, err = password.Hash(seed.Password, cost); err != nil {
			return nil, err
		}
	}

	role := seed.Role
	if role == "" {
		role = "member"
	}

	return &User{
		ID:           id,
		Email:        email,
		Name:         seed.Name,
		Role:         role,
		AvatarURL:    seed.AvatarURL,
		PasswordHash: hash,
		Disabled:     seed.Disabled,
		RedirectURL:  seed.RedirectURL,
	}, nil
}

func (s *Store) FindByEmail(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[auth.SanitizeEmail(email)]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return u, nil
}

func (s *Store) FindByID(id string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, errs.ErrUserNotFound
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byEmail)
}
