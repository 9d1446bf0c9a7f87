package models

// SessionUser is the signed-in driver as seen by the dashboard.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Session is held in process memory for the lifetime of a signed-in session.
// It is never written to the durable store.
type Session struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
