package auth

import "taskflow-server/internal/model"

// LoginOutput is the mock-login result: a signed session token and the
// user it belongs to.
type LoginOutput struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}
