package usecase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"taskflow-server/internal/credential/repository/memory"
	"taskflow-server/pkg/encrypter"
)

func TestGetAccessTokenNotConnected(t *testing.T) {
	uc := newTestUseCase(t)

	token, err := uc.GetAccessToken(context.Background(), "stranger")
	if err != nil {
		t.Fatalf("GetAccessToken error: %v", err)
	}
	if token != "" {
		t.Errorf("token = %q, want empty for unconnected user", token)
	}
}

func TestGetAccessTokenFreshToken(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	expiry := time.Now().Add(time.Hour)
	err := uc.SaveGoogleToken(ctx, "user-1", &oauth2.Token{
		AccessToken:  "ya29.fresh",
		RefreshToken: "rt-1",
		Expiry:       expiry,
	})
	if err != nil {
		t.Fatalf("SaveGoogleToken error: %v", err)
	}

	token, err := uc.GetAccessToken(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetAccessToken error: %v", err)
	}
	if token != "ya29.fresh" {
		t.Errorf("token = %q, want ya29.fresh", token)
	}
}

func TestGetAccessTokenNoExpiryNeverRefreshes(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	err := uc.SaveGoogleToken(ctx, "user-1", &oauth2.Token{AccessToken: "ya29.eternal"})
	if err != nil {
		t.Fatalf("SaveGoogleToken error: %v", err)
	}

	token, err := uc.GetAccessToken(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetAccessToken error: %v", err)
	}
	if token != "ya29.eternal" {
		t.Errorf("token = %q", token)
	}
}

func TestGetAccessTokenRefreshesStale(t *testing.T) {
	var refreshCalls int
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm error: %v", err)
		}
		if got := r.Form.Get("refresh_token"); got != "rt-1" {
			t.Errorf("refresh_token = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"ya29.refreshed","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	enc := encrypter.New("test-token-key")
	repo := memory.New()
	uc := New(&mockLogger{}, repo, enc, &oauth2.Config{
		ClientID:     "cid",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{TokenURL: tokenServer.URL},
	})
	ctx := context.Background()

	stale := time.Now().Add(-time.Minute)
	err := uc.SaveGoogleToken(ctx, "user-1", &oauth2.Token{
		AccessToken:  "ya29.stale",
		RefreshToken: "rt-1",
		Expiry:       stale,
	})
	if err != nil {
		t.Fatalf("SaveGoogleToken error: %v", err)
	}

	token, err := uc.GetAccessToken(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetAccessToken error: %v", err)
	}
	if token != "ya29.refreshed" {
		t.Errorf("token = %q, want ya29.refreshed", token)
	}
	if refreshCalls != 1 {
		t.Errorf("refresh endpoint hit %d times, want 1", refreshCalls)
	}

	// The refreshed token is persisted, so a second read skips the
	// token endpoint entirely.
	token, err = uc.GetAccessToken(ctx, "user-1")
	if err != nil {
		t.Fatalf("second GetAccessToken error: %v", err)
	}
	if token != "ya29.refreshed" {
		t.Errorf("second token = %q", token)
	}
	if refreshCalls != 1 {
		t.Errorf("refresh endpoint hit %d times after persist, want 1", refreshCalls)
	}
}

func TestGoogleConnectedAndDisconnect(t *testing.T) {
	uc := newTestUseCase(t)
	ctx := context.Background()

	connected, err := uc.GoogleConnected(ctx, "user-1")
	if err != nil || connected {
		t.Fatalf("GoogleConnected = %v, %v; want false, nil", connected, err)
	}

	_ = uc.SaveGoogleToken(ctx, "user-1", &oauth2.Token{AccessToken: "ya29.x"})
	connected, _ = uc.GoogleConnected(ctx, "user-1")
	if !connected {
		t.Error("expected connected after SaveGoogleToken")
	}

	if err := uc.DisconnectGoogle(ctx, "user-1"); err != nil {
		t.Fatalf("DisconnectGoogle error: %v", err)
	}
	connected, _ = uc.GoogleConnected(ctx, "user-1")
	if connected {
		t.Error("expected disconnected after DisconnectGoogle")
	}
}
