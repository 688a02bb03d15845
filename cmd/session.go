package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/pathweaver/internal/learner"
	"github.com/abhisek/pathweaver/internal/store"
	"github.com/spf13/cobra"
)

// snapshotKeep bounds how many snapshots are retained after each save.
const snapshotKeep = 10

// openSession opens the store and restores the learner from the latest
// snapshot. The caller owns closing the returned store.
func openSession(cmd *cobra.Command) (*store.Store, *learner.Service, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	snap, err := st.SnapshotRepo().Latest(cmd.Context())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load snapshot: %w", err)
	}

	var data *store.SnapshotData
	if snap != nil {
		data = &snap.Data
	}

	return st, learner.NewService(data, st.EventRepo()), nil
}

// saveSnapshot persists the learner state and prunes old snapshots.
func saveSnapshot(ctx context.Context, st *store.Store, svc *learner.Service) error {
	repo := st.SnapshotRepo()
	err := repo.Save(ctx, &store.Snapshot{
		Data: store.SnapshotData{
			Version: 1,
			Learner: svc.SnapshotData(),
		},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return repo.Prune(ctx, snapshotKeep)
}
