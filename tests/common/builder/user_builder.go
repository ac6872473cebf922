//go:build unit

package builder

import (
	"loginflow/internal/devauth"
)

type UserBuilder struct {
	seed devauth.SeedUser
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		seed: devauth.SeedUser{
			ID:       "6f1c2f0e-8d7b-4c4e-9d1a-3e2b1a0c9f11",
			Email:    "test@example.com",
			Name:     "Test User",
			Role:     "viewer",
			Password: "password123",
		},
	}
}

func (u *UserBuilder) With(mutate func(*devauth.SeedUser)) *UserBuilder {
	mutate(&u.seed)
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.seed.Email = email
	return u
}

func (u *UserBuilder) Disabled() *UserBuilder {
	u.seed.Disabled = true
	return u
}

func (u *UserBuilder) WithRedirectURL(url string) *UserBuilder {
	u.seed.RedirectURL = url
	return u
}

func (u *UserBuilder) BuildSeed() devauth.SeedUser {
	return u.seed
}
