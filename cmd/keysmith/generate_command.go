package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"keysmith/internal/deps"
	"keysmith/internal/inkscape"
	"keysmith/internal/keytable"
	"keysmith/internal/labelcache"
	"keysmith/internal/logging"
	"keysmith/internal/pipeline"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var only []string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate label fragments for the key table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Converter(cfg.Inkscape.Binary))
			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required tools: %s (run `keysmith deps` for details)", strings.Join(missing, ", "))
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			client, err := inkscape.New(cfg.Inkscape.Binary, cfg.Inkscape.TimeoutSeconds,
				inkscape.WithActions(cfg.Inkscape.Actions))
			if err != nil {
				return err
			}

			var cache *labelcache.Store
			if cfg.Cache.Enabled {
				cache, err = labelcache.Open(cfg.Cache.Path)
				if err != nil {
					return fmt.Errorf("open generation cache: %w", err)
				}
				defer cache.Close()
			}

			p, err := pipeline.New(cfg, keytable.Keys(), client, cache, logger)
			if err != nil {
				return err
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			result, runErr := p.Run(signalCtx, pipeline.Options{Force: force, Only: only})

			out := cmd.OutOrStdout()
			if result != nil {
				fmt.Fprintf(out, "Generated %d, skipped %d, failed %d\n",
					len(result.Generated), len(result.Skipped), len(result.Failed))
				for _, failure := range result.Failed {
					fmt.Fprintf(out, "  %s: %v\n", failure.Key, failure.Err)
				}
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Regenerate keys even when the cache says they are current")
	cmd.Flags().StringSliceVar(&only, "only", nil, "Restrict the run to the named keys")
	return cmd
}
