package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/marqueai/internal/domain/subscription"
	"github.com/BruksfildServices01/marqueai/internal/domain/tenant"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
)

type GetStatus struct {
	repo tenant.Repository
	now  func() time.Time
}

func NewGetStatus(repo tenant.Repository) *GetStatus {
	return &GetStatus{repo: repo, now: time.Now}
}

func (uc *GetStatus) Execute(ctx context.Context, profileID uuid.UUID) (*domain.Summary, error) {
	p, err := uc.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "profile_not_found")
	}

	s := domain.Summarize(p, uc.now())
	return &s, nil
}
