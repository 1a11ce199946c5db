package auth

// TokenRequest is the credential payload for the token endpoint.
type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenPairResponse carries a freshly minted access/refresh pair.
type TokenPairResponse struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
}

// RegisterRequest contains the payload required to create an account.
type RegisterRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Password2 string `json:"password2" validate:"required"`
}
