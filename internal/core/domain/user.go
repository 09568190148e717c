package domain

// Credentials is the login body sent to the upstream API. Never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthToken is the opaque bearer value issued by the upstream login endpoint.
// Expiry is decided upstream; nothing here tracks it.
type AuthToken struct {
	Token string `json:"token"`
}

// MerchantUserRequest asks the upstream API for one merchant user's profile.
type MerchantUserRequest struct {
	ID int `json:"id"`
}

// MerchantUserInfoResponse is the upstream answer to a merchant user lookup.
type MerchantUserInfoResponse struct {
	Status       string        `json:"status,omitempty"`
	MerchantUser *MerchantUser `json:"merchantUser,omitempty"`
}

// MerchantUser holds the profile fields returned for a merchant user.
type MerchantUser struct {
	ID         int    `json:"id"`
	Role       string `json:"role,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	MerchantID int    `json:"merchantId,omitempty"`
	SecretKey  string `json:"-"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}
