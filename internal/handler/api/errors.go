package api

import (
	"errors"
	"net/http"

	"salonbook/internal/handler/httperr"
	"salonbook/internal/pkg/errs"
	"salonbook/internal/usecase/commands"
	"salonbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errors.New("unauthenticated")

// abortReviewCommandError maps command failures onto the API error contract:
// bad content is 400, an ineligible booking is 422, ownership is 403,
// a missing review is 404 and both write races are 409. Sentinels are
// attached with errs.Mark, so matching goes through errs.Is.
func abortReviewCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidReviewInput):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review input", nil)
	case errs.Is(err, commands.ErrBookingNotEligible):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking is not eligible for review", nil)
	case errs.Is(err, commands.ErrDuplicateReview):
		httperr.AbortWithError(c, http.StatusConflict, err, "Review already exists for this booking", nil)
	case errs.Is(err, commands.ErrReviewNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
	case errs.Is(err, commands.ErrReviewNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to modify this review", nil)
	case errs.Is(err, commands.ErrReviewNotPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "Review is not awaiting moderation", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func abortReviewQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrReviewNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
	case errs.Is(err, queries.ErrSalonNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Salon not found", nil)
	case errs.Is(err, queries.ErrStaffNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Staff not found", nil)
	case errs.Is(err, queries.ErrReviewAccess):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
