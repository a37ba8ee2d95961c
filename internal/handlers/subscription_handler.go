package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/marqueai/internal/httpresp"
	"github.com/BruksfildServices01/marqueai/internal/middleware"
	ucSubscription "github.com/BruksfildServices01/marqueai/internal/usecase/subscription"
)

type SubscriptionHandler struct {
	status   *ucSubscription.GetStatus
	checkout *ucSubscription.Checkout
	webhook  *ucSubscription.HandlePaymentWebhook
}

func NewSubscriptionHandler(
	status *ucSubscription.GetStatus,
	checkout *ucSubscription.Checkout,
	webhook *ucSubscription.HandlePaymentWebhook,
) *SubscriptionHandler {
	return &SubscriptionHandler{status: status, checkout: checkout, webhook: webhook}
}

func (h *SubscriptionHandler) Status(c *gin.Context) {
	s, err := h.status.Execute(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		respondError(c, err, "failed_to_load_subscription")
		return
	}
	httpresp.OK(c, s)
}

func (h *SubscriptionHandler) Checkout(c *gin.Context) {
	out, err := h.checkout.Execute(c.Request.Context(), middleware.ProfileID(c))
	if err != nil {
		respondError(c, err, "failed_to_create_checkout")
		return
	}
	httpresp.Created(c, out)
}

type mercadoPagoNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// MercadoPagoWebhook accepts both the JSON body and the legacy
// ?topic=&id= query form.
func (h *SubscriptionHandler) MercadoPagoWebhook(c *gin.Context) {
	var body mercadoPagoNotification
	_ = c.ShouldBindJSON(&body)

	topic := body.Type
	if topic == "" {
		topic = c.Query("type")
	}
	if topic == "" {
		topic = c.Query("topic")
	}

	rawID := body.Data.ID
	if rawID == "" {
		rawID = c.Query("data.id")
	}
	if rawID == "" {
		rawID = c.Query("id")
	}
	paymentID, _ := strconv.Atoi(rawID)

	res, err := h.webhook.Execute(c.Request.Context(), topic, paymentID)
	if err != nil {
		middleware.Logger(c).Error("mercadopago webhook failed",
			zap.String("topic", topic),
			zap.Int("payment_id", paymentID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": res})
}
