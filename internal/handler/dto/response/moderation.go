package response

import (
	"salonbook/internal/usecase/queries"
)

type PendingReviewItemResponse struct {
	ID            string   `json:"id"`
	SalonID       string   `json:"salon_id"`
	SalonName     string   `json:"salon_name"`
	CustomerID    string   `json:"customer_id"`
	CustomerEmail string   `json:"customer_email"`
	BookingID     string   `json:"booking_id"`
	Rating        int32    `json:"rating"`
	Comment       string   `json:"comment"`
	Images        []string `json:"images"`
	CreatedAt     int64    `json:"created_at"`
}

func FromPendingReviewList(items []*queries.PendingReviewItem) []*PendingReviewItemResponse {
	res := make([]*PendingReviewItemResponse, len(items))
	for i, it := range items {
		res[i] = &PendingReviewItemResponse{
			ID:            it.ID.String(),
			SalonID:       it.SalonID.String(),
			SalonName:     it.SalonName,
			CustomerID:    it.CustomerID.String(),
			CustomerEmail: it.CustomerEmail,
			BookingID:     it.BookingID.String(),
			Rating:        it.Rating,
			Comment:       it.Comment,
			Images:        it.Images,
			CreatedAt:     it.CreatedAt.Unix(),
		}
	}
	return res
}
