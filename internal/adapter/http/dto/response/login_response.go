package response

// AdminLoginResponse mirrors the shape the admin form expects. Token is set
// only on success and must be sent back as a bearer token on admin calls.
type AdminLoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
}
