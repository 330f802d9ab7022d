package request

type RejectReviewRequest struct {
	Reason *string `json:"reason" binding:"omitempty,max=500"`
}
