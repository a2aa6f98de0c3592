package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/infra/config"
	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var configPath string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a measurement config without opening any map",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfgPath, err := resolveConfig(workspace, configPath)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateConfig(config.Loader{})
			cfg, err := uc.Execute(cmd.Context(), cfgPath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s, %d map(s), aperture core %.2f° / rim %.2f°–%.2f°\n",
				cfg.TargetName, len(cfg.Maps),
				cfg.Aperture.CoreDeg, cfg.Aperture.RimInnerDeg, cfg.Aperture.RimOuterDeg)
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&configPath, "config", "c", "", "Config file (optional; defaults to gopvac.yaml at the workspace root)")

	return c
}
