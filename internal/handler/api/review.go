package api

import (
	"net/http"
	"strconv"

	reqdto "salonbook/internal/handler/dto/request"
	resdto "salonbook/internal/handler/dto/response"
	"salonbook/internal/handler/httperr"
	"salonbook/internal/handler/middleware"
	"salonbook/internal/usecase/commands"
	"salonbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Submit a review for a completed booking; it enters moderation before publication
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateReview(c.Request.Context(), commands.CreateReviewRequest{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Images:    req.Images,
	}, userID)
	if err != nil {
		abortReviewCommandError(c, err)
		return
	}
	role, _ := middleware.GetUserRole(c)
	view, err := h.q.GetByID(c.Request.Context(), result.ReviewID, userID, role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReviewView(view))
}

// @Summary Get review
// @Description Get a review by ID; pending and rejected reviews are visible only to their owner and moderators
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	view, err := h.q.GetByID(c.Request.Context(), id, actorID, role)
	if err != nil {
		abortReviewQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Update review
// @Description Edit own review; the edited review returns to moderation
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateReviewRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err = h.cmds.UpdateReview(c.Request.Context(), id, commands.UpdateReviewRequest{
		Rating:  req.Rating,
		Comment: req.Comment,
	}, actorID); err != nil {
		abortReviewCommandError(c, err)
		return
	}
	role, _ := middleware.GetUserRole(c)
	view, err := h.q.GetByID(c.Request.Context(), id, actorID, role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load review", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary Delete review
// @Description Delete own review (moderators can delete any)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)
	if err := h.cmds.DeleteReview(c.Request.Context(), id, actorID, role); err != nil {
		abortReviewCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Check review eligibility
// @Description Check whether the caller may review a booking; advisory only, the create endpoint re-validates
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param booking_id query string true "Booking ID"
// @Success 200 {object} resdto.EligibilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /reviews/eligibility [get]
func (h *ReviewHandler) CheckEligibility(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	bookingID, err := uuid.Parse(c.Query("booking_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	view, err := h.q.CheckEligibility(c.Request.Context(), bookingID, userID)
	if err != nil {
		abortReviewQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEligibilityView(view))
}

// @Summary List salon reviews
// @Description List published reviews for a salon with optional rating filters and keyset pagination
// @Tags reviews
// @Produce json
// @Param id path string true "Salon ID"
// @Param min_rating query int false "Minimum rating (1-5)"
// @Param max_rating query int false "Maximum rating (1-5)"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.SalonReviewItemResponse
// @Failure 400 {object} map[string]string
// @Router /salons/{id}/reviews [get]
func (h *ReviewHandler) ListBySalon(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid salon id", nil)
		return
	}
	var minPtr, maxPtr *int
	if v := c.Query("min_rating"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			minPtr = &iv
		}
	}
	if v := c.Query("max_rating"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			maxPtr = &iv
		}
	}
	limit, cursor := parsePageParams(c)
	items, next, err := h.q.ListBySalon(c.Request.Context(), salonID, queries.ReviewFilters{MinRating: minPtr, MaxRating: maxPtr}, cursor, limit)
	if err != nil {
		abortReviewQueryError(c, err)
		return
	}
	resp := gin.H{"reviews": resdto.FromSalonReviewList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List user reviews
// @Description List reviews posted by a user in every state (customers can only access their own)
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.OwnReviewItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /users/{id}/reviews [get]
func (h *ReviewHandler) ListByUser(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}
	actorID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)
	limit, cursor := parsePageParams(c)
	items, next, err := h.q.ListByCustomer(c.Request.Context(), customerID, actorID, role, cursor, limit)
	if err != nil {
		abortReviewQueryError(c, err)
		return
	}
	resp := gin.H{"reviews": resdto.FromOwnReviewList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Salon rating stats
// @Description Get the aggregated rating and histogram for a salon
// @Tags reviews
// @Produce json
// @Param id path string true "Salon ID"
// @Success 200 {object} resdto.SalonRatingStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /salons/{id}/rating-stats [get]
func (h *ReviewHandler) SalonRatingStats(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid salon id", nil)
		return
	}
	stats, err := h.q.GetSalonRatingStats(c.Request.Context(), salonID)
	if err != nil {
		abortReviewQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSalonRatingStats(stats))
}

// @Summary Staff rating stats
// @Description Get the aggregated rating and histogram for a staff member
// @Tags reviews
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} resdto.StaffRatingStatsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff/{id}/rating-stats [get]
func (h *ReviewHandler) StaffRatingStats(c *gin.Context) {
	staffID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid staff id", nil)
		return
	}
	stats, err := h.q.GetStaffRatingStats(c.Request.Context(), staffID)
	if err != nil {
		abortReviewQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStaffRatingStats(stats))
}

func parsePageParams(c *gin.Context) (int, *queries.Cursor) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return limit, cursor
}
