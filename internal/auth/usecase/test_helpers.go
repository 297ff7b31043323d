package usecase

import (
	"context"

	"golang.org/x/oauth2"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeCredUC struct {
	savedUser  string
	savedToken *oauth2.Token
	connected  bool
}

func (f *fakeCredUC) GetAccessToken(_ context.Context, _ string) (string, error) { return "", nil }
func (f *fakeCredUC) SaveGoogleToken(_ context.Context, userID string, tok *oauth2.Token) error {
	f.savedUser = userID
	f.savedToken = tok
	return nil
}
func (f *fakeCredUC) DisconnectGoogle(_ context.Context, _ string) error { return nil }
func (f *fakeCredUC) GoogleConnected(_ context.Context, _ string) (bool, error) {
	return f.connected, nil
}
func (f *fakeCredUC) GetAPIKey(_ context.Context, _, _ string) (string, error)    { return "", nil }
func (f *fakeCredUC) SaveAPIKey(_ context.Context, _, _, _ string) error          { return nil }
func (f *fakeCredUC) DeleteAPIKey(_ context.Context, _, _ string) error           { return nil }
func (f *fakeCredUC) ListProviders(_ context.Context, _ string) ([]string, error) { return nil, nil }
