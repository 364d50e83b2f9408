package authapi

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         UserPayload `json:"user,omitempty"`
}

type UserPayload struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	FullName string `json:"fullName,omitempty"`
}

type logoutInput struct {
	Authorization string `header:"Authorization"`
}

type logoutOutput struct {
	Body StatusResponse
}

type StatusResponse struct {
	Status string `json:"status"`
}

type refreshInput struct {
	RefreshToken string `header:"X-Refresh-Token"`
}

type revokeInput struct {
	Body RevokeRequest
}

type RevokeRequest struct {
	Token string `json:"token"`
}
