package authsdk

// Envelope is the uniform response body for every API endpoint. Signin
// additionally populates the top-level Token field.
type Envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    *UserData         `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Token   string            `json:"token,omitempty"`
}

// UserData carries the identity portion of a response envelope.
type UserData struct {
	Username string `json:"username"`
}

// SignupRequest is the body for POST /api/v1/signup.
type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// SigninRequest is the body for POST /api/v1/signin.
type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
