package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jkasmommy/brainpod-sub000/internal/itembank"
	"github.com/jkasmommy/brainpod-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "brainpod",
	Short: "Adaptive placement and mastery engine",
	Long:  "BrainPod core — adaptive diagnostics, placement, per-skill mastery tracking, and spaced-repetition daily plans.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env beside the binary may set BRAINPOD_DB; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BRAINPOD_DB env var)")

	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then BRAINPOD_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store for a command.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

// latestSnapshotData loads the most recent snapshot's data, or an empty
// document if none exists yet.
func latestSnapshotData(ctx context.Context, st *store.Store) (*store.SnapshotData, error) {
	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return &store.SnapshotData{Version: 1}, nil
	}
	data := snap.Data
	return &data, nil
}

// saveSnapshotData persists a new snapshot of the full learner state.
func saveSnapshotData(ctx context.Context, st *store.Store, data *store.SnapshotData) error {
	seq, err := st.CurrentSequence(ctx)
	if err != nil {
		seq = 0
	}
	return st.SnapshotRepo().Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data:      *data,
	})
}

// parseSubject validates a subject argument.
func parseSubject(arg string) (itembank.Subject, error) {
	for _, s := range itembank.AllSubjects() {
		if string(s) == arg {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown subject %q (want one of: math, reading, science, social-studies)", arg)
}
