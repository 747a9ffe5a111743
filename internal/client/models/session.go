package models

// Session is the authenticated identity persisted between runs.
type Session struct {
	Token    string
	Role     Role
	UserID   string
	Username string
}

// Empty reports whether no token is present.
func (s Session) Empty() bool {
	return s.Token == ""
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResponse is the successful answer of POST /auth/login.
type LoginResponse struct {
	Token    string `json:"token"`
	Role     string `json:"role"`
	UserID   ID     `json:"userId"`
	Username string `json:"username"`
	Message  string `json:"message,omitempty"`
}

// Session converts the response into the persisted form.
func (r LoginResponse) Session() Session {
	return Session{
		Token:    r.Token,
		Role:     Role(r.Role),
		UserID:   r.UserID.String(),
		Username: r.Username,
	}
}
