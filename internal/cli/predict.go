package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/usecase/voidtoy"
)

func predictCmd() *cobra.Command {
	in := voidtoy.DefaultBootes()
	p := voidtoy.DefaultParams()
	prof := voidtoy.DefaultProfileSpec()
	var withProfile bool
	var format string

	c := &cobra.Command{
		Use:   "predict",
		Short: "Predict the void core ΔT from the GoP toy model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			pred, err := voidtoy.Predict(in, p)
			if err != nil {
				return err
			}

			var pts []voidtoy.ProfilePoint
			if withProfile {
				prof.Z = in.Z
				prof.DeltaCore = in.DeltaAbs
				pts = voidtoy.RadialProfile(prof, p)
			}
			return printPrediction(cmd.OutOrStdout(), pred, pts, format)
		},
	}

	c.Flags().StringVar(&in.Object, "object", in.Object, "void name, for labeling only")
	c.Flags().Float64Var(&in.RMpc, "radius", in.RMpc, "void radius [Mpc]")
	c.Flags().Float64Var(&in.Z, "redshift", in.Z, "void redshift")
	c.Flags().Float64Var(&in.DeltaAbs, "delta", in.DeltaAbs, "locked core underdensity |δ|")
	c.Flags().Float64Var(&in.Band[0], "delta-low", in.Band[0], "sensitivity band lower |δ|")
	c.Flags().Float64Var(&in.Band[1], "delta-high", in.Band[1], "sensitivity band upper |δ|")
	c.Flags().StringVar(&in.Anchor, "anchor", in.Anchor,
		fmt.Sprintf("calibration preset: %s", strings.Join(voidtoy.AnchorNames(), "|")))
	c.Flags().Float64Var(&p.FEnt, "f-ent", p.FEnt, "entanglement fraction")
	c.Flags().Float64Var(&p.DDecay, "d-decay", p.DDecay, "effective potential-decay factor")
	c.Flags().BoolVar(&withProfile, "profile", false, "include the normalized radial wΓ profile")
	c.Flags().Float64Var(&prof.DeltaRim, "delta-rim", prof.DeltaRim, "rim underdensity for the radial profile")
	c.Flags().Float64Var(&prof.Sigma, "sigma", prof.Sigma, "Gaussian width of the radial profile (units of R)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	return c
}

func printPrediction(w io.Writer, pred voidtoy.Prediction, profile []voidtoy.ProfilePoint, format string) error {
	switch format {
	case "json":
		payload := map[string]any{
			"object":       pred.Object,
			"anchor":       pred.Anchor,
			"vc_m3":        pred.VcM3,
			"delta_t_uk":   pred.DeltaTUK,
			"band_low_uk":  pred.BandLowUK,
			"band_high_uk": pred.BandHighUK,
		}
		if profile != nil {
			pts := make([]map[string]float64, len(profile))
			for i, pt := range profile {
				pts[i] = map[string]float64{
					"r_frac":      pt.RFrac,
					"delta_abs":   pt.DeltaAbs,
					"weight_norm": pt.WeightNorm,
				}
			}
			payload["profile"] = pts
		}
		return printJSON(w, payload)
	case "pretty", "":
		fmt.Fprintln(w, titleStyle.Render(pred.Object))
		fmt.Fprintf(w, "  anchor:   %s (R=%g Mpc, z=%g, ΔT=%g µK)\n",
			pred.Anchor, pred.Values.RCalMpc, pred.Values.ZCal, pred.Values.DeltaTCalUK)
		fmt.Fprintf(w, "  Vc:       %.4e m³\n", pred.VcM3)
		fmt.Fprintf(w, "  ΔT_core:  %.3f µK  at |δ|=%g\n", pred.DeltaTUK, pred.Input.DeltaAbs)
		fmt.Fprintf(w, "  band:     [%.3f, %.3f] µK  for |δ| in [%g, %g]\n",
			pred.BandLowUK, pred.BandHighUK, pred.Input.Band[0], pred.Input.Band[1])
		if len(profile) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, faintStyle.Render("  r/R     |δ(r)|   wΓ/wΓ(0)"))
			for _, pt := range profile {
				fmt.Fprintf(w, "  %-6.2f  %-7.3f  %.4f\n", pt.RFrac, pt.DeltaAbs, pt.WeightNorm)
			}
		}
		fmt.Fprintln(w, faintStyle.Render("  ΔT_core is the toy-model decrement magnitude at the void center"))
		return nil
	default:
		return badFormat(format)
	}
}
