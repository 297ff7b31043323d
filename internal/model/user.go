package model

// User is the authenticated principal resolved from a session token.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// Scope carries the caller identity through use-case boundaries.
type Scope struct {
	UserID string
	Email  string
}
