package subscription

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	"github.com/BruksfildServices01/marqueai/internal/domain/tenant"
	"github.com/BruksfildServices01/marqueai/internal/models"
	"github.com/BruksfildServices01/marqueai/internal/payment"
)

type WebhookResult string

const (
	WebhookIgnored   WebhookResult = "ignored"
	WebhookActivated WebhookResult = "activated"
)

// HandlePaymentWebhook re-reads the payment from the gateway and activates
// the Pro plan once it is approved. The notification body is never trusted.
type HandlePaymentWebhook struct {
	repo    tenant.Repository
	gateway payment.Gateway
	audit   audit.Recorder
}

func NewHandlePaymentWebhook(repo tenant.Repository, gateway payment.Gateway, audit audit.Recorder) *HandlePaymentWebhook {
	return &HandlePaymentWebhook{repo: repo, gateway: gateway, audit: audit}
}

func (uc *HandlePaymentWebhook) Execute(ctx context.Context, topic string, paymentID int) (WebhookResult, error) {
	if topic != "payment" || paymentID <= 0 {
		return WebhookIgnored, nil
	}

	pay, err := uc.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return "", err
	}
	if pay.Status != payment.StatusApproved {
		return WebhookIgnored, nil
	}

	profileID, err := uuid.Parse(pay.ExternalReference)
	if err != nil {
		zap.L().Warn("approved payment without profile reference",
			zap.Int("payment_id", paymentID),
			zap.String("external_reference", pay.ExternalReference),
		)
		return WebhookIgnored, nil
	}

	if err := uc.repo.SetSubscription(ctx, profileID, models.PlanPro, models.SubscriptionActive); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Warn("approved payment for unknown profile",
				zap.Int("payment_id", paymentID),
				zap.Stringer("profile_id", profileID),
			)
			return WebhookIgnored, nil
		}
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		ProfileID: profileID,
		Action:    "subscription_activated",
		Entity:    "subscription",
		Metadata:  map[string]int{"payment_id": paymentID},
	})

	return WebhookActivated, nil
}
