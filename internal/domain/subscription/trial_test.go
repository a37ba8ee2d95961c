package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/marqueai/internal/models"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	ends := now.Add(2*24*time.Hour + 3*time.Hour)
	assert.Equal(t, 3, DaysRemaining(&ends, now))

	exact := now.Add(48 * time.Hour)
	assert.Equal(t, 2, DaysRemaining(&exact, now))

	past := now.Add(-time.Hour)
	assert.Equal(t, 0, DaysRemaining(&past, now))

	assert.Equal(t, 0, DaysRemaining(nil, now))
}

func TestBadge(t *testing.T) {
	assert.Equal(t, BadgeTrial, Badge(models.SubscriptionTrial, 3))
	assert.Equal(t, BadgeExpired, Badge(models.SubscriptionTrial, 0))
	assert.Equal(t, BadgeExpired, Badge(models.SubscriptionExpired, 5))
	assert.Equal(t, BadgeExpired, Badge(models.SubscriptionCancelled, 0))
	assert.Equal(t, BadgeActive, Badge(models.SubscriptionActive, 0))
}

func TestSummarize(t *testing.T) {
	now := time.Now()
	ends := now.Add(30 * time.Hour)
	p := &models.Profile{
		SubscriptionStatus: models.SubscriptionTrial,
		SubscriptionPlan:   models.PlanFree,
		TrialEndsAt:        &ends,
	}

	s := Summarize(p, now)
	assert.Equal(t, 2, s.DaysRemaining)
	assert.Equal(t, BadgeTrial, s.Badge)
	assert.Equal(t, models.PlanFree, s.Plan)
}
