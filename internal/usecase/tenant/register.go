package tenant

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	"github.com/BruksfildServices01/marqueai/internal/auth"
	domain "github.com/BruksfildServices01/marqueai/internal/domain/tenant"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/models"
	"github.com/BruksfildServices01/marqueai/internal/timezone"
)

const minPasswordLength = 6

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RegisterInput struct {
	BarbershopName  string
	OwnerName       string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
	Whatsapp        string
}

type AuthResult struct {
	Token   string          `json:"token"`
	Profile *models.Profile `json:"profile"`
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	repo        domain.Repository
	tokens      *auth.Tokens
	audit       audit.Recorder
	trial       time.Duration
	checkDomain func(email string) bool
}

// NewRegister builds the signup use case. checkDomain may be nil to skip the
// e-mail domain lookup.
func NewRegister(
	repo domain.Repository,
	tokens *auth.Tokens,
	audit audit.Recorder,
	trial time.Duration,
	checkDomain func(email string) bool,
) *Register {
	return &Register{
		repo:        repo,
		tokens:      tokens,
		audit:       audit,
		trial:       trial,
		checkDomain: checkDomain,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*AuthResult, error) {

	// --------------------------------------------------
	// 1. Form checks
	// --------------------------------------------------
	name := strings.TrimSpace(in.BarbershopName)
	owner := strings.TrimSpace(in.OwnerName)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if name == "" || owner == "" || email == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}
	if len(in.Password) < minPasswordLength {
		return nil, httperr.ErrBusiness("password_too_short")
	}
	if in.Password != in.ConfirmPassword {
		return nil, httperr.ErrBusiness("password_mismatch")
	}
	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	// --------------------------------------------------
	// 2. E-mail must be free
	// --------------------------------------------------
	if _, err := uc.repo.GetProfileByEmail(ctx, email); err == nil {
		return nil, httperr.ErrBusiness("email_already_exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Slug
	// --------------------------------------------------
	slug, err := domain.UniqueSlug(ctx, name, uc.repo.SlugExists)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. Profile + settings, one transaction
	// --------------------------------------------------
	trialEnds := time.Now().Add(uc.trial)
	profile := &models.Profile{
		BarbershopName:     name,
		OwnerName:          owner,
		Email:              email,
		PasswordHash:       string(hashed),
		Phone:              strings.TrimSpace(in.Phone),
		Slug:               slug,
		PrimaryColor:       "#007BFF",
		SecondaryColor:     "#FFFFFF",
		Timezone:           timezone.DefaultTimezone,
		SubscriptionPlan:   models.PlanFree,
		SubscriptionStatus: models.SubscriptionTrial,
		TrialEndsAt:        &trialEnds,
	}

	whatsapp := strings.TrimSpace(in.Whatsapp)
	if whatsapp == "" {
		whatsapp = profile.Phone
	}
	settings := models.NewDefaultSettings(profile.ID, whatsapp)

	if err := uc.repo.CreateProfile(ctx, profile, settings); err != nil {
		switch {
		case httperr.IsUniqueViolation(err, "idx_profiles_email"):
			return nil, httperr.ErrBusiness("email_already_exists")
		case httperr.IsUniqueViolation(err, "idx_profiles_slug"):
			return nil, httperr.ErrBusiness("slug_already_exists")
		}
		return nil, err
	}

	token, err := uc.tokens.Issue(profile.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profile.ID,
		Action:    "profile_registered",
		Entity:    "profile",
		EntityID:  &profile.ID,
	})

	return &AuthResult{Token: token, Profile: profile}, nil
}
