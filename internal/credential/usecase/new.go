package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/oauth2"

	"taskflow-server/internal/credential"
	"taskflow-server/internal/credential/repository"
	"taskflow-server/pkg/encrypter"
	pkgLog "taskflow-server/pkg/log"
)

const keyCacheSize = 256

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	enc      encrypter.Encrypter
	oauthCfg *oauth2.Config
	keyCache *lru.Cache[string, string] // "userID/provider" -> decrypted key
}

var _ credential.UseCase = (*implUseCase)(nil)

// New creates a new credential UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	enc encrypter.Encrypter,
	oauthCfg *oauth2.Config,
) *implUseCase {
	cache, _ := lru.New[string, string](keyCacheSize)
	return &implUseCase{
		l:        l,
		repo:     repo,
		enc:      enc,
		oauthCfg: oauthCfg,
		keyCache: cache,
	}
}
