package api

import (
	"net/http"
	"time"

	reqdto "salonbook/internal/handler/dto/request"
	resdto "salonbook/internal/handler/dto/response"
	"salonbook/internal/handler/httperr"
	"salonbook/internal/usecase/commands"
	"salonbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ModerationHandler struct {
	cmds commands.ModerationCommands
	q    queries.ModerationQueries
}

func NewModerationHandler(cmds commands.ModerationCommands, q queries.ModerationQueries) *ModerationHandler {
	return &ModerationHandler{cmds: cmds, q: q}
}

// @Summary List pending reviews
// @Description List reviews awaiting moderation, oldest first, with optional salon and date filters
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Param salon_id query string false "Filter by salon"
// @Param from query string false "Submitted from (RFC3339)"
// @Param to query string false "Submitted to (RFC3339)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.PendingReviewItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /moderation/reviews [get]
func (h *ModerationHandler) ListPending(c *gin.Context) {
	var filters queries.PendingFilters
	if v := c.Query("salon_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid salon id", nil)
			return
		}
		filters.SalonID = &id
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid from timestamp", nil)
			return
		}
		filters.SubmittedFrom = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid to timestamp", nil)
			return
		}
		filters.SubmittedTo = &t
	}

	limit, cursor := parsePageParams(c)
	items, next, err := h.q.ListPending(c.Request.Context(), filters, cursor, limit)
	if err != nil {
		abortReviewQueryError(c, err)
		return
	}
	resp := gin.H{"reviews": resdto.FromPendingReviewList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Approve review
// @Description Publish a pending review; its ratings enter the salon and staff aggregates
// @Tags moderation
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /moderation/reviews/{id}/approve [post]
func (h *ModerationHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.ApproveReview(c.Request.Context(), id); err != nil {
		abortReviewCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reject review
// @Description Reject a pending review with an optional reason visible to its author
// @Tags moderation
// @Accept json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.RejectReviewRequest false "Reject review request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /moderation/reviews/{id}/reject [post]
func (h *ModerationHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.RejectReviewRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}
	if err := h.cmds.RejectReview(c.Request.Context(), id, req.Reason); err != nil {
		abortReviewCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
