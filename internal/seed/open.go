package seed

import (
	"context"
	"fmt"

	"github.com/hetulpatel/athletemon/internal/config"
	"github.com/hetulpatel/athletemon/internal/credentials"
	"github.com/hetulpatel/athletemon/internal/docstore"
	"github.com/hetulpatel/athletemon/internal/logging"
)

// OpenStore connects to the backend cfg selects. For Firestore the
// service-account key is read and checked first, so a missing or malformed key
// fails before any connection is made.
func OpenStore(ctx context.Context, cfg *config.Config) (docstore.Store, error) {
	switch cfg.Backend {
	case config.BackendFirestore:
		sa, err := credentials.Load(cfg.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("load credentials: %w", err)
		}
		store, err := docstore.NewFirestore(ctx, cfg.ProjectID, sa)
		if err != nil {
			return nil, err
		}
		logging.Infof("[docstore] firestore project %s as %s", store.ProjectID(), sa.ClientEmail)
		return store, nil
	case config.BackendSQLite:
		store, err := docstore.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logging.Infof("[docstore] sqlite at %s", store.Path())
		return store, nil
	case config.BackendRedis:
		store, err := docstore.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisPrefix)
		if err != nil {
			return nil, err
		}
		logging.Infof("[docstore] redis at %s (prefix %s)", cfg.RedisAddr, cfg.RedisPrefix)
		return store, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
