package usecase

import (
	"sync"
	"time"

	"golang.org/x/oauth2"

	"taskflow-server/internal/credential"
	"taskflow-server/internal/model"
	"taskflow-server/pkg/log"
	"taskflow-server/pkg/token"
)

// stateTTL bounds how long a started consent flow stays redeemable.
const stateTTL = 10 * time.Minute

type stateRecord struct {
	userID    string
	verifier  string
	createdAt time.Time
}

type implUseCase struct {
	l         log.Logger
	credUC    credential.UseCase
	signer    *token.MockSigner // nil outside mock mode
	oauthCfg  *oauth2.Config
	webAppURL string
	mockMode  bool

	mu     sync.Mutex
	states map[string]stateRecord
	users  map[string]model.User

	now func() time.Time
}

// New creates the auth use case. signer may be nil when mock mode is off;
// oauthCfg may have empty credentials when Google OAuth is not configured.
func New(l log.Logger, credUC credential.UseCase, signer *token.MockSigner, oauthCfg *oauth2.Config, webAppURL string, mockMode bool) *implUseCase {
	return &implUseCase{
		l:         l,
		credUC:    credUC,
		signer:    signer,
		oauthCfg:  oauthCfg,
		webAppURL: webAppURL,
		mockMode:  mockMode,
		states:    make(map[string]stateRecord),
		users:     make(map[string]model.User),
		now:       time.Now,
	}
}
