package subscription

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	"github.com/BruksfildServices01/marqueai/internal/domain/tenant"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/models"
	"github.com/BruksfildServices01/marqueai/internal/payment"
)

const proPlanTitle = "Marque Aí - Plano Pro (mensal)"

// Checkout opens a payment for the Pro plan. The profile id travels as the
// external reference so the webhook can find the tenant again.
type Checkout struct {
	repo    tenant.Repository
	gateway payment.Gateway
	audit   audit.Recorder
	price   float64
}

func NewCheckout(repo tenant.Repository, gateway payment.Gateway, audit audit.Recorder, price float64) *Checkout {
	return &Checkout{repo: repo, gateway: gateway, audit: audit, price: price}
}

func (uc *Checkout) Execute(ctx context.Context, profileID uuid.UUID) (*payment.Checkout, error) {
	p, err := uc.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, httperr.NotFoundAs(err, "profile_not_found")
	}

	if p.SubscriptionPlan == models.PlanPro && p.SubscriptionStatus == models.SubscriptionActive {
		return nil, httperr.ErrBusiness("already_subscribed")
	}

	out, err := uc.gateway.CreateCheckout(ctx, payment.CheckoutRequest{
		Title:             proPlanTitle,
		Price:             uc.price,
		ExternalReference: p.ID.String(),
		PayerEmail:        p.Email,
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: p.ID,
		Action:    "checkout_started",
		Entity:    "subscription",
		Metadata:  map[string]string{"preference_id": out.PreferenceID},
	})

	return out, nil
}
