package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// loginRequest binds the form-encoded login body. The identifier field is
// email; username is accepted as a legacy alias carrying the email value.
type loginRequest struct {
	Email    string `form:"email"`
	Username string `form:"username"`
	Password string `form:"password"`
}

// userResponse is the public projection of a user: the password hash and
// creation timestamp never leave the server.
type userResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
