package usecase

import (
	"context"

	"taskflow-server/internal/auth"
	"taskflow-server/internal/model"
)

// demoUser is the fixed identity mock logins resolve to.
var demoUser = model.User{
	ID:    "demo-user",
	Email: "demo@taskflow.local",
	Name:  "Demo User",
}

func (uc *implUseCase) MockLogin(ctx context.Context) (*auth.LoginOutput, error) {
	if !uc.mockMode || uc.signer == nil {
		return nil, auth.ErrMockOnly
	}

	uc.mu.Lock()
	uc.users[demoUser.ID] = demoUser
	uc.mu.Unlock()

	return &auth.LoginOutput{
		Token: uc.signer.Sign(demoUser.ID),
		User:  demoUser,
	}, nil
}

func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	uc.mu.Lock()
	user, ok := uc.users[sc.UserID]
	uc.mu.Unlock()
	if ok {
		return user, nil
	}
	return model.User{ID: sc.UserID, Email: sc.Email}, nil
}
