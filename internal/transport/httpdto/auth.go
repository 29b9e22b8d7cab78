package httpdto

// RegisterRequest is used for POST /register.
// Pointers let "required" check presence while still accepting "".
type RegisterRequest struct {
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// LoginRequest is used for POST /login
type LoginRequest struct {
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}
