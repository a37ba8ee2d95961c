package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

const StatusApproved = "approved"

var ErrDisabled = errors.New("payment: gateway not configured")

type CheckoutRequest struct {
	Title             string
	Price             float64
	ExternalReference string
	PayerEmail        string
}

type Checkout struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

type Payment struct {
	ID                int
	Status            string
	ExternalReference string
}

type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	GetPayment(ctx context.Context, id int) (*Payment, error)
}

// ======================================================
// MERCADO PAGO
// ======================================================

type MercadoPago struct {
	preferences     preference.Client
	payments        mppayment.Client
	notificationURL string
}

func NewMercadoPago(accessToken, notificationURL string) (*MercadoPago, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payment: mercadopago config: %w", err)
	}

	return &MercadoPago{
		preferences:     preference.NewClient(cfg),
		payments:        mppayment.NewClient(cfg),
		notificationURL: notificationURL,
	}, nil
}

func (m *MercadoPago) CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error) {
	pref := preference.Request{
		Items: []preference.ItemRequest{{
			Title:      req.Title,
			Quantity:   1,
			UnitPrice:  req.Price,
			CurrencyID: "BRL",
		}},
		ExternalReference: req.ExternalReference,
		NotificationURL:   m.notificationURL,
	}
	if req.PayerEmail != "" {
		pref.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}

	res, err := m.preferences.Create(ctx, pref)
	if err != nil {
		return nil, fmt.Errorf("payment: create preference: %w", err)
	}

	return &Checkout{PreferenceID: res.ID, InitPoint: res.InitPoint}, nil
}

func (m *MercadoPago) GetPayment(ctx context.Context, id int) (*Payment, error) {
	res, err := m.payments.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("payment: get %d: %w", id, err)
	}

	return &Payment{
		ID:                res.ID,
		Status:            res.Status,
		ExternalReference: res.ExternalReference,
	}, nil
}

// ======================================================
// DISABLED
// ======================================================

type Disabled struct{}

func (Disabled) CreateCheckout(context.Context, CheckoutRequest) (*Checkout, error) {
	return nil, ErrDisabled
}

func (Disabled) GetPayment(context.Context, int) (*Payment, error) {
	return nil, ErrDisabled
}

// New returns the Mercado Pago gateway, or Disabled when no token is set.
func New(accessToken, notificationURL string) (Gateway, error) {
	if accessToken == "" {
		return Disabled{}, nil
	}
	return NewMercadoPago(accessToken, notificationURL)
}
