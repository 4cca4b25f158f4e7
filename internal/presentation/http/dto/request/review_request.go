package request

// CreateReviewRequest represents a review creation request
type CreateReviewRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Title   *string `json:"title" binding:"omitempty,max=255"`
	Comment string  `json:"comment" binding:"required,max=5000"`
}

// RespondToReviewRequest represents a staff response to a review
type RespondToReviewRequest struct {
	Response string `json:"response" binding:"required,max=5000"`
}
