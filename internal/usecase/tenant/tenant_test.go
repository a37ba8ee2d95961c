package tenant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	"github.com/BruksfildServices01/marqueai/internal/auth"
	"github.com/BruksfildServices01/marqueai/internal/cache"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/models"
	"github.com/BruksfildServices01/marqueai/internal/storage"
)

func validSignup() RegisterInput {
	return RegisterInput{
		BarbershopName:  "Barbearia do Zé",
		OwnerName:       "José",
		Email:           " Ze@Example.com ",
		Password:        "segredo1",
		ConfirmPassword: "segredo1",
		Phone:           "11999990000",
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	got, ok := httperr.BusinessCode(err)
	require.True(t, ok, "expected business error %q, got %v", code, err)
	assert.Equal(t, code, got)
}

func TestRegisterCreatesTrialProfile(t *testing.T) {
	repo := newFakeTenantRepo()
	tokens := auth.NewTokens("secret", time.Hour)
	uc := NewRegister(repo, tokens, audit.Nop{}, 7*24*time.Hour, nil)

	res, err := uc.Execute(context.Background(), validSignup())
	require.NoError(t, err)

	assert.Equal(t, "ze@example.com", res.Profile.Email)
	assert.Equal(t, "barbearia-do-ze", res.Profile.Slug)
	assert.Equal(t, models.SubscriptionTrial, res.Profile.SubscriptionStatus)
	assert.Equal(t, models.PlanFree, res.Profile.SubscriptionPlan)
	require.NotNil(t, res.Profile.TrialEndsAt)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), *res.Profile.TrialEndsAt, time.Minute)

	id, err := tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Profile.ID, id)

	s, err := repo.GetSettings(context.Background(), res.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "11999990000", s.WhatsappNumber)
	assert.Equal(t, models.DefaultOpeningHours(), s.OpeningHours.Data())
}

func TestRegisterSecondShopGetsSuffixedSlug(t *testing.T) {
	repo := newFakeTenantRepo()
	uc := NewRegister(repo, auth.NewTokens("secret", time.Hour), audit.Nop{}, time.Hour, nil)

	_, err := uc.Execute(context.Background(), validSignup())
	require.NoError(t, err)

	in := validSignup()
	in.Email = "outro@example.com"
	res, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "barbearia-do-ze-2", res.Profile.Slug)
}

func TestRegisterRejections(t *testing.T) {
	repo := newFakeTenantRepo()
	uc := NewRegister(repo, auth.NewTokens("secret", time.Hour), audit.Nop{}, time.Hour,
		func(email string) bool { return email != "x@nowhere.invalid" })

	_, err := uc.Execute(context.Background(), validSignup())
	require.NoError(t, err)

	cases := map[string]func(*RegisterInput){
		"email_already_exists": func(in *RegisterInput) {},
		"password_too_short": func(in *RegisterInput) {
			in.Password, in.ConfirmPassword = "123", "123"
		},
		"password_mismatch": func(in *RegisterInput) {
			in.ConfirmPassword = "outra-senha"
		},
		"invalid_email_domain": func(in *RegisterInput) {
			in.Email = "x@nowhere.invalid"
		},
		"invalid_request": func(in *RegisterInput) {
			in.OwnerName = "  "
		},
	}

	for code, mutate := range cases {
		t.Run(code, func(t *testing.T) {
			in := validSignup()
			mutate(&in)
			_, err := uc.Execute(context.Background(), in)
			assertCode(t, err, code)
		})
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeTenantRepo()
	tokens := auth.NewTokens("secret", time.Hour)

	_, err := NewRegister(repo, tokens, audit.Nop{}, time.Hour, nil).Execute(context.Background(), validSignup())
	require.NoError(t, err)

	login := NewLogin(repo, tokens)

	res, err := login.Execute(context.Background(), "ZE@example.com", "segredo1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	_, err = login.Execute(context.Background(), "ze@example.com", "errada")
	assertCode(t, err, "invalid_credentials")

	_, err = login.Execute(context.Background(), "ninguem@example.com", "segredo1")
	assertCode(t, err, "invalid_credentials")
}

func TestSettingsSaveAppliesBrandingTogether(t *testing.T) {
	repo := newFakeTenantRepo()
	res, err := NewRegister(repo, auth.NewTokens("s", time.Hour), audit.Nop{}, time.Hour, nil).
		Execute(context.Background(), validSignup())
	require.NoError(t, err)
	id := res.Profile.ID

	uc := NewSettings(repo, cache.Nop{}, audit.Nop{})

	week := models.DefaultOpeningHours()
	week.Sunday = models.DaySchedule{Open: "10:00", Close: "14:00"}
	color := "#112233"

	saved, err := uc.Save(context.Background(), id, SettingsInput{
		OpeningHours:          week,
		WhatsappNumber:        " 11988887777 ",
		WhatsappNotifications: false,
		EmailNotifications:    true,
		PrimaryColor:          &color,
	})
	require.NoError(t, err)
	assert.Equal(t, "11988887777", saved.WhatsappNumber)
	assert.Equal(t, models.DefaultCancellationPolicy, saved.CancellationPolicy)

	p, err := repo.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "#112233", p.PrimaryColor)

	got, err := uc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "10:00", got.OpeningHours.Data().Sunday.Open)
	assert.False(t, got.WhatsappNotifications)
}

func TestSettingsSaveRejectsBadInput(t *testing.T) {
	repo := newFakeTenantRepo()
	res, err := NewRegister(repo, auth.NewTokens("s", time.Hour), audit.Nop{}, time.Hour, nil).
		Execute(context.Background(), validSignup())
	require.NoError(t, err)

	uc := NewSettings(repo, cache.Nop{}, audit.Nop{})

	week := models.DefaultOpeningHours()
	week.Monday = models.DaySchedule{Open: "18:00", Close: "09:00"}
	_, err = uc.Save(context.Background(), res.Profile.ID, SettingsInput{OpeningHours: week})
	assertCode(t, err, "invalid_opening_hours")

	bad := "blue"
	_, err = uc.Save(context.Background(), res.Profile.ID, SettingsInput{
		OpeningHours: models.DefaultOpeningHours(),
		PrimaryColor: &bad,
	})
	assertCode(t, err, "invalid_color")
}

func TestSettingsSaveFailureLeavesProfileUntouched(t *testing.T) {
	repo := newFakeTenantRepo()
	res, err := NewRegister(repo, auth.NewTokens("s", time.Hour), audit.Nop{}, time.Hour, nil).
		Execute(context.Background(), validSignup())
	require.NoError(t, err)

	repo.saveErr = errors.New("tx aborted")
	color := "#000000"

	_, err = NewSettings(repo, cache.Nop{}, audit.Nop{}).Save(context.Background(), res.Profile.ID, SettingsInput{
		OpeningHours: models.DefaultOpeningHours(),
		PrimaryColor: &color,
	})
	require.Error(t, err)

	p, err := repo.GetProfile(context.Background(), res.Profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "#007BFF", p.PrimaryColor)
}

func TestProfilesPublicLinkAndUpdate(t *testing.T) {
	repo := newFakeTenantRepo()
	res, err := NewRegister(repo, auth.NewTokens("s", time.Hour), audit.Nop{}, 7*24*time.Hour, nil).
		Execute(context.Background(), validSignup())
	require.NoError(t, err)
	id := res.Profile.ID

	uc := NewProfiles(repo, cache.Nop{}, storage.Disabled{}, audit.Nop{}, "https://marqueai.app/")

	link, err := uc.PublicLink(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "https://marqueai.app/agendar/barbearia-do-ze", link)

	me, err := uc.Me(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 7, me.Subscription.DaysRemaining)

	tz := "Mars/Olympus"
	_, err = uc.Update(context.Background(), id, ProfileInput{Timezone: &tz})
	assertCode(t, err, "invalid_timezone")

	name := "Nova Navalha"
	p, err := uc.Update(context.Background(), id, ProfileInput{BarbershopName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Nova Navalha", p.BarbershopName)
	assert.Equal(t, "barbearia-do-ze", p.Slug)
}
