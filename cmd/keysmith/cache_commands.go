package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"keysmith/internal/labelcache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Generation cache utilities",
	}

	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show generation cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := labelcache.Open(cfg.Cache.Path)
			if err != nil {
				return fmt.Errorf("open generation cache: %w", err)
			}
			defer store.Close()

			count, err := store.Count(cmd.Context())
			if err != nil {
				return fmt.Errorf("count cache entries: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Enabled: %s\n", yesNo(cfg.Cache.Enabled))
			fmt.Fprintf(out, "Path:    %s\n", store.Path())
			fmt.Fprintf(out, "Entries: %d\n", count)
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all generation cache entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := labelcache.Open(cfg.Cache.Path)
			if err != nil {
				return fmt.Errorf("open generation cache: %w", err)
			}
			defer store.Close()

			count, err := store.Count(cmd.Context())
			if err != nil {
				return fmt.Errorf("count cache entries: %w", err)
			}
			if err := store.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cache entries\n", count)
			return nil
		},
	}
}
