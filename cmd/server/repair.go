package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/config"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/pkg/clock"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/redis"
	"github.com/harsheetasys/pokemon-battle-simulation/internal/repositories/battles"
)

var repairCmd = &cobra.Command{
	Use:   "repair-history",
	Short: "Find and fix inconsistent battle history in Redis",
	Long: `Scans stored battle records, deletes the ones that no longer decode, re-indexes records
missing from the recency index and prunes index entries whose record is gone.`,
	Args: cobra.NoArgs,
	RunE: runRepair,
}

func init() {
	addConfigFlags(repairCmd)
	repairCmd.Flags().Bool("dry-run", false, "Report problems without changing anything")
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !cfg.Redis.UsesRedis() {
		return fmt.Errorf("no redis addresses configured; in-memory history needs no repair")
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	client, err := redis.New(cfg.Redis.Topology(), cfg.Redis.Options())
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = client.Close() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if err := redis.Ping(ctx, client, redisPingTimeout); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	return repairHistory(ctx, client, cfg, dryRun, os.Stdout)
}

func repairHistory(ctx context.Context, client redis.Client, cfg *config.Config, dryRun bool, w io.Writer) error {
	repairer, err := battles.NewRedisRepairer(&battles.Config{
		Client:     client,
		Clock:      clock.New(),
		IndexLimit: cfg.Battles.IndexLimit,
	})
	if err != nil {
		return err
	}

	out, err := repairer.Repair(ctx, &battles.RepairInput{DryRun: dryRun})
	if err != nil {
		return fmt.Errorf("repair failed: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Checked %d records\n", out.Checked)
	printKeys(w, "Corrupt records", out.Corrupt)
	printKeys(w, "Missing from index", out.Reindexed)
	printKeys(w, "Stale index entries", out.Pruned)

	if dryRun {
		_, _ = fmt.Fprintln(w, "Dry run - no changes made")
	}
	return nil
}

func printKeys(w io.Writer, title string, keys []string) {
	if len(keys) == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "%s (%d):\n", title, len(keys))
	for _, key := range keys {
		_, _ = fmt.Fprintf(w, "  - %s\n", key)
	}
}
