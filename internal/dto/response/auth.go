package response

// AuthResponse is the bare token payload returned by signup and login,
// not wrapped in the response envelope.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username"`
}
