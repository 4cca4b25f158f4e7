package request

// UpdateUserRolesRequest represents a staff role assignment request
type UpdateUserRolesRequest struct {
	Roles []string `json:"roles" binding:"required,min=1"`
}

// SetUserActiveRequest represents an account activation toggle
type SetUserActiveRequest struct {
	IsActive bool `json:"is_active"`
}

// AdjustLoyaltyPointsRequest represents a manual loyalty adjustment
type AdjustLoyaltyPointsRequest struct {
	Points int64  `json:"points" binding:"required"`
	Reason string `json:"reason" binding:"required,max=500"`
}
