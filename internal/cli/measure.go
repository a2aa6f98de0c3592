package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/infra/config"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/infra/logger"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/infra/resultstore"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/infra/skymaps"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/infra/workspacefinder"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/ports"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/usecase"
)

func measureCmd(debug *bool) *cobra.Command {
	var workspace string
	var configPath string
	var noSave bool
	var format string
	var workers int
	var seed uint64

	c := &cobra.Command{
		Use:   "measure",
		Short: "Run the aperture photometry pipeline on the configured CMB maps",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, cfgPath, err := resolveConfig(workspace, configPath)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:    root,
				Debug:   *debug,
				Console: *debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			cfg, err := config.LoadMeasureConfig(cfgPath)
			if err != nil {
				return err
			}
			if workers > 0 {
				cfg.Workers = workers
			}
			if seed != 0 {
				cfg.Seed = seed
			}

			var store ports.ArtifactStore
			if !noSave {
				store = resultstore.NewJSONStore(root, cfg.RunsDir, resultstore.WithIndex(true))
			}

			uc := usecase.NewMeasureTarget(skymaps.NewLoader(), store)

			started := time.Now()
			logger.L().Info("measurement.started",
				"target", cfg.TargetName, "maps", len(cfg.Maps), "seed", cfg.Seed)

			rec, recID, err := uc.Execute(cmd.Context(), cfg)
			if err != nil {
				logger.L().Error("measurement.failed", "err", err)
				return err
			}

			logger.L().Info("measurement.finished",
				"id", recID, "maps_ok", rec.Combined.MapsOK,
				"maps_failed", rec.Combined.MapsFailed,
				"elapsed", time.Since(started).Round(time.Millisecond))

			if err := printRecord(cmd.OutOrStdout(), rec, recID, format); err != nil {
				return err
			}

			if rec.Combined.MapsOK == 0 {
				return fmt.Errorf("measurement failed on all %d map(s)", rec.Combined.MapsTotal)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&configPath, "config", "c", "", "Config file (optional; defaults to gopvac.yaml at the workspace root)")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save the measurement artifact under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().IntVar(&workers, "workers", 0, "Worker goroutines (0 = all cores)")
	c.Flags().Uint64Var(&seed, "seed", 0, "Override the config seed")

	return c
}

// resolveConfig turns the --workspace/--config pair into a workspace root
// and a config file path. An explicit config path wins; otherwise the
// workspace is located by searching for gopvac.yaml upward.
func resolveConfig(workspaceFlag, configFlag string) (root, cfgPath string, err error) {
	if p := strings.TrimSpace(configFlag); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", "", fmt.Errorf("invalid config path: %w", err)
		}
		return filepath.Dir(abs), abs, nil
	}

	if w := strings.TrimSpace(workspaceFlag); w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, filepath.Join(abs, "gopvac.yaml"), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("get working directory: %w", err)
	}
	found, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return "", "", fmt.Errorf("workspace not found from %q (tip: run `gopvac init`): %w", wd, err)
	}
	return found, filepath.Join(found, "gopvac.yaml"), nil
}

func printRecord(w io.Writer, rec domain.MeasurementRecord, recID, format string) error {
	switch format {
	case "json":
		return printJSON(w, map[string]any{
			"record_id": recID,
			"record":    rec,
		})
	case "pretty", "":
		printPrettyRecord(w, rec, recID)
		return nil
	default:
		return badFormat(format)
	}
}

func printPrettyRecord(w io.Writer, rec domain.MeasurementRecord, recID string) {
	fmt.Fprintln(w, titleStyle.Render("Target: "+rec.TargetName))
	fmt.Fprintf(w, "Center:   %s\n", rec.Target)
	fmt.Fprintf(w, "Aperture: core %.2f° / rim %.2f°–%.2f°\n",
		rec.Aperture.CoreDeg, rec.Aperture.RimInnerDeg, rec.Aperture.RimOuterDeg)
	fmt.Fprintf(w, "Seed:     %d\n", rec.Seed)
	if recID != "" {
		fmt.Fprintf(w, "Run ID:   %s\n", recID)
	}
	fmt.Fprintln(w)

	for _, m := range rec.Maps {
		if m.Failure != nil {
			fmt.Fprintf(w, "%s %s\n", mark(false), m.Label)
			fmt.Fprintf(w, "  error: %s (%s)\n", m.Failure.Message, m.Failure.Kind)
			fmt.Fprintln(w)
			continue
		}

		fmt.Fprintf(w, "%s %s (nside %d)\n", mark(true), m.Label, m.Nside)
		fmt.Fprintf(w, "  ΔT:        %.2f µK  (core %.2f, rim %.2f; %d/%d pix)\n",
			m.Photometry.DeltaT, m.Photometry.CoreMean, m.Photometry.RimMean,
			m.Photometry.NCorePix, m.Photometry.NRimPix)
		if m.Bootstrap != nil {
			fmt.Fprintf(w, "  bootstrap: %.2f ± %.2f µK  (%d iterations)\n",
				m.Bootstrap.Mean, m.Bootstrap.Std, m.Bootstrap.Iterations)
		}
		if m.Null != nil {
			signif := ""
			if m.Null.Std > 0 {
				signif = fmt.Sprintf("  → %.2fσ", (m.Photometry.DeltaT-m.Null.Mean)/m.Null.Std)
			}
			fmt.Fprintf(w, "  null:      %.2f ± %.2f µK  (%d used, %d skipped)%s\n",
				m.Null.Mean, m.Null.Std, m.Null.Used, m.Null.Skipped, signif)
		}
		fmt.Fprintln(w)
	}

	c := rec.Combined
	fmt.Fprintln(w, titleStyle.Render("Combined"))
	fmt.Fprintf(w, "  maps:     %d ok / %d failed of %d\n", c.MapsOK, c.MapsFailed, c.MapsTotal)
	if c.MapsOK > 0 {
		fmt.Fprintf(w, "  mean ΔT:  %.2f µK\n", c.MeanDeltaT)
	}
	if c.MapsOK > 1 {
		fmt.Fprintf(w, "  spread:   %.2f µK across pipelines\n", c.DeltaTSpread)
	}
}
