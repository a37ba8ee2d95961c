package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/marqueai/internal/httperr"
	"github.com/BruksfildServices01/marqueai/internal/httpresp"
	"github.com/BruksfildServices01/marqueai/internal/middleware"
	"github.com/BruksfildServices01/marqueai/internal/notify"
)

type NotificationHandler struct {
	repo notify.Repository
}

func NewNotificationHandler(repo notify.Repository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

func (h *NotificationHandler) List(c *gin.Context) {
	unread, _ := strconv.ParseBool(c.Query("unread"))

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	out, err := h.repo.ListNotifications(c.Request.Context(), middleware.ProfileID(c), unread, limit)
	if err != nil {
		respondError(c, err, "failed_to_list_notifications")
		return
	}
	httpresp.List(c, out)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.repo.MarkRead(c.Request.Context(), middleware.ProfileID(c), id); err != nil {
		respondError(c, httperr.NotFoundAs(err, "notification_not_found"), "failed_to_update_notification")
		return
	}
	c.Status(http.StatusNoContent)
}
