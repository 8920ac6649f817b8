package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/donbr/raven/pkg/cli/config"
	"github.com/donbr/raven/pkg/domain/interfaces"
	firestorerepo "github.com/donbr/raven/pkg/repository/database/firestore"
	memrepo "github.com/donbr/raven/pkg/repository/database/memory"
)

// newRunRepository builds the run repository: Firestore when configured,
// otherwise in-memory (runs are lost on exit, artifacts are not).
func newRunRepository(ctx context.Context, cfg *config.Firestore) (interfaces.RunRepository, func(), error) {
	if cfg.ProjectID == "" {
		ctxlog.From(ctx).Debug("no firestore project configured, using in-memory run repository")
		return memrepo.New(), nil, nil
	}

	cfg.SetDefaults()
	client, err := firestorerepo.New(ctx, cfg.ProjectID, cfg.DatabaseID)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to create firestore run repository")
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}
