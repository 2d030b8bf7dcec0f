package request

// AdminLoginRequest carries the shared admin credential pair.
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
