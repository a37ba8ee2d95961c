package tenant

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marqueai/internal/auth"
	domain "github.com/BruksfildServices01/marqueai/internal/domain/tenant"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
)

type Login struct {
	repo   domain.Repository
	tokens *auth.Tokens
}

func NewLogin(repo domain.Repository, tokens *auth.Tokens) *Login {
	return &Login{repo: repo, tokens: tokens}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*AuthResult, error) {
	profile, err := uc.repo.GetProfileByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	token, err := uc.tokens.Issue(profile.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, Profile: profile}, nil
}
