package entity

// Credentials are submitted on login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignupInput registers a new account. Agreed is checked client-side and never sent.
type SignupInput struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Name         string `json:"name" validate:"required"`
	ReferralCode string `json:"referral_code,omitempty"`
	Agreed       bool   `json:"-" validate:"eq=true"`
}

// TokenResponse is the login response body.
type TokenResponse struct {
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type"`
}
