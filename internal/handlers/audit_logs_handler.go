package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/marqueai/internal/audit"
	"github.com/BruksfildServices01/marqueai/internal/httpresp"
	"github.com/BruksfildServices01/marqueai/internal/middleware"
	"github.com/BruksfildServices01/marqueai/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	repo audit.Repository
}

func NewAuditLogsHandler(repo audit.Repository) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	filter := audit.ListFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}

	if from, err := timezone.ParseDate(c.Query("from")); err == nil {
		filter.From = &from
	}
	if to, err := timezone.ParseDate(c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		filter.To = &end
	}

	logs, total, err := h.repo.ListAuditLogs(c.Request.Context(), middleware.ProfileID(c), filter)
	if err != nil {
		respondError(c, err, "audit_list_failed")
		return
	}

	httpresp.Page(c, logs, page, limit, total)
}
