package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/usecase/vacuum"
)

func vacuumCmd() *cobra.Command {
	p := vacuum.DefaultParams()
	var format string

	c := &cobra.Command{
		Use:   "vacuum",
		Short: "Compare the ΛCDM vacuum energy density with the GoP vacuum scale",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := vacuum.Compare(p)
			if err != nil {
				return err
			}
			return printVacuum(cmd.OutOrStdout(), rep, format)
		},
	}

	c.Flags().Float64Var(&p.H0KmSMpc, "h0", p.H0KmSMpc, "Hubble parameter [km/s/Mpc]")
	c.Flags().Float64Var(&p.OmegaLambda, "omega-lambda", p.OmegaLambda, "dark energy density fraction")
	c.Flags().Float64Var(&p.KappaA, "kappa-a", p.KappaA, "dimensionless GoP scaling")
	c.Flags().Float64Var(&p.E0Erg, "e0", p.E0Erg, "characteristic decoherence energy [erg]")
	c.Flags().Float64Var(&p.CoherenceM3, "volume", p.CoherenceM3, "coarse-grained coherence volume [m^3]")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	return c
}

func printVacuum(w io.Writer, rep vacuum.Report, format string) error {
	switch format {
	case "json":
		return printJSON(w, map[string]any{
			"h0_si":             rep.H0SI,
			"rho_lambda_mass":   rep.RhoLambdaMass,
			"rho_lambda_energy": rep.RhoLambdaEnergy,
			"rho_gop":           rep.RhoGoP,
			"ratio":             rep.Ratio,
		})
	case "pretty", "":
		fmt.Fprintln(w, titleStyle.Render("Vacuum energy comparison"))
		fmt.Fprintf(w, "  H0:          %.6g 1/s  (%.4g km/s/Mpc)\n", rep.H0SI, rep.Params.H0KmSMpc)
		fmt.Fprintf(w, "  ρ_Λ (mass):  %.6e kg/m³\n", rep.RhoLambdaMass)
		fmt.Fprintf(w, "  ρ_Λ (energy): %.6e J/m³\n", rep.RhoLambdaEnergy)
		fmt.Fprintf(w, "  ρ_GoP:       %.6e J/m³\n", rep.RhoGoP)
		fmt.Fprintf(w, "  ratio:       %.6f\n", rep.Ratio)
		fmt.Fprintln(w, faintStyle.Render("  ratio = ρ_vac^GoP / ρ_Λ"))
		return nil
	default:
		return badFormat(format)
	}
}
