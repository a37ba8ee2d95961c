package subscription

import (
	"context"
	"time"

	"github.com/BruksfildServices01/marqueai/internal/domain/tenant"
)

// ExpireTrials flips every trial whose end date has passed to expired.
type ExpireTrials struct {
	repo tenant.Repository
}

func NewExpireTrials(repo tenant.Repository) *ExpireTrials {
	return &ExpireTrials{repo: repo}
}

func (uc *ExpireTrials) Execute(ctx context.Context, now time.Time) (int64, error) {
	return uc.repo.ExpireTrials(ctx, now)
}
