package response

import (
	"salonbook/internal/usecase/queries"
)

type ReviewResponse struct {
	ID           string   `json:"id"`
	BookingID    string   `json:"booking_id"`
	CustomerID   string   `json:"customer_id"`
	SalonID      string   `json:"salon_id"`
	SalonName    string   `json:"salon_name"`
	StaffID      *string  `json:"staff_id,omitempty"`
	Rating       int32    `json:"rating"`
	Comment      string   `json:"comment"`
	Images       []string `json:"images"`
	Status       string   `json:"status"`
	StatusLabel  string   `json:"status_label"`
	RejectReason *string  `json:"reject_reason,omitempty"`
	CreatedAt    int64    `json:"created_at"`
	UpdatedAt    int64    `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	var staffID *string
	if v.StaffID != nil {
		s := v.StaffID.String()
		staffID = &s
	}
	return &ReviewResponse{
		ID:           v.ID.String(),
		BookingID:    v.BookingID.String(),
		CustomerID:   v.CustomerID.String(),
		SalonID:      v.SalonID.String(),
		SalonName:    v.SalonName,
		StaffID:      staffID,
		Rating:       v.Rating,
		Comment:      v.Comment,
		Images:       v.Images,
		Status:       v.Status,
		StatusLabel:  v.StatusLabel,
		RejectReason: v.RejectReason,
		CreatedAt:    v.CreatedAt.Unix(),
		UpdatedAt:    v.UpdatedAt.Unix(),
	}
}

type SalonReviewItemResponse struct {
	ID        string   `json:"id"`
	StaffID   *string  `json:"staff_id,omitempty"`
	Rating    int32    `json:"rating"`
	Comment   string   `json:"comment"`
	Images    []string `json:"images"`
	CreatedAt int64    `json:"created_at"`
}

func FromSalonReviewList(items []*queries.SalonReviewItem) []*SalonReviewItemResponse {
	res := make([]*SalonReviewItemResponse, len(items))
	for i, it := range items {
		var staffID *string
		if it.StaffID != nil {
			s := it.StaffID.String()
			staffID = &s
		}
		res[i] = &SalonReviewItemResponse{
			ID:        it.ID.String(),
			StaffID:   staffID,
			Rating:    it.Rating,
			Comment:   it.Comment,
			Images:    it.Images,
			CreatedAt: it.CreatedAt.Unix(),
		}
	}
	return res
}

type OwnReviewItemResponse struct {
	ID           string   `json:"id"`
	SalonID      string   `json:"salon_id"`
	SalonName    string   `json:"salon_name"`
	BookingID    string   `json:"booking_id"`
	Rating       int32    `json:"rating"`
	Comment      string   `json:"comment"`
	Images       []string `json:"images"`
	Status       string   `json:"status"`
	StatusLabel  string   `json:"status_label"`
	RejectReason *string  `json:"reject_reason,omitempty"`
	CreatedAt    int64    `json:"created_at"`
	UpdatedAt    int64    `json:"updated_at"`
}

func FromOwnReviewList(items []*queries.OwnReviewItem) []*OwnReviewItemResponse {
	res := make([]*OwnReviewItemResponse, len(items))
	for i, it := range items {
		res[i] = &OwnReviewItemResponse{
			ID:           it.ID.String(),
			SalonID:      it.SalonID.String(),
			SalonName:    it.SalonName,
			BookingID:    it.BookingID.String(),
			Rating:       it.Rating,
			Comment:      it.Comment,
			Images:       it.Images,
			Status:       it.Status,
			StatusLabel:  it.StatusLabel,
			RejectReason: it.RejectReason,
			CreatedAt:    it.CreatedAt.Unix(),
			UpdatedAt:    it.UpdatedAt.Unix(),
		}
	}
	return res
}

type SalonRatingStatsResponse struct {
	SalonID       string  `json:"salon_id"`
	SalonName     string  `json:"salon_name"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int32   `json:"total_reviews"`
	Rating1Count  int32   `json:"rating_1_count"`
	Rating2Count  int32   `json:"rating_2_count"`
	Rating3Count  int32   `json:"rating_3_count"`
	Rating4Count  int32   `json:"rating_4_count"`
	Rating5Count  int32   `json:"rating_5_count"`
}

func FromSalonRatingStats(s *queries.SalonRatingStats) *SalonRatingStatsResponse {
	return &SalonRatingStatsResponse{
		SalonID:       s.SalonID.String(),
		SalonName:     s.SalonName,
		AverageRating: s.AverageRating,
		TotalReviews:  s.TotalReviews,
		Rating1Count:  s.Rating1Count,
		Rating2Count:  s.Rating2Count,
		Rating3Count:  s.Rating3Count,
		Rating4Count:  s.Rating4Count,
		Rating5Count:  s.Rating5Count,
	}
}

type StaffRatingStatsResponse struct {
	StaffID       string  `json:"staff_id"`
	StaffName     string  `json:"staff_name"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int32   `json:"total_reviews"`
	Rating1Count  int32   `json:"rating_1_count"`
	Rating2Count  int32   `json:"rating_2_count"`
	Rating3Count  int32   `json:"rating_3_count"`
	Rating4Count  int32   `json:"rating_4_count"`
	Rating5Count  int32   `json:"rating_5_count"`
}

func FromStaffRatingStats(s *queries.StaffRatingStats) *StaffRatingStatsResponse {
	return &StaffRatingStatsResponse{
		StaffID:       s.StaffID.String(),
		StaffName:     s.StaffName,
		AverageRating: s.AverageRating,
		TotalReviews:  s.TotalReviews,
		Rating1Count:  s.Rating1Count,
		Rating2Count:  s.Rating2Count,
		Rating3Count:  s.Rating3Count,
		Rating4Count:  s.Rating4Count,
		Rating5Count:  s.Rating5Count,
	}
}

type EligibilityResponse struct {
	BookingID string `json:"booking_id"`
	Eligible  bool   `json:"eligible"`
	Reason    string `json:"reason,omitempty"`
}

func FromEligibilityView(v *queries.EligibilityView) *EligibilityResponse {
	return &EligibilityResponse{
		BookingID: v.BookingID.String(),
		Eligible:  v.Eligible,
		Reason:    v.Reason,
	}
}
