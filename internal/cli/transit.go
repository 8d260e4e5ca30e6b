package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajveda/jyotish/internal/transit"
	"github.com/rajveda/jyotish/internal/vedic"
)

var (
	transitProfile string
	transitDate    string
)

// transitCmd computes a gochar snapshot against a natal chart
var transitCmd = &cobra.Command{
	Use:   "transit",
	Short: "Compute a gochar snapshot and textual highlights",
	Long: `Transit maps the planets for a date onto the natal Lagna and Moon
reference frames and reports classical activations.

Example:
  jyotish transit --profile "Asha Rao" --date 2024-03-01`,
	RunE: runTransit,
}

func init() {
	rootCmd.AddCommand(transitCmd)

	transitCmd.Flags().StringVar(&transitProfile, "profile", "", "profile name")
	transitCmd.Flags().StringVar(&transitDate, "date", "", "transit date (YYYY-MM-DD)")
	_ = transitCmd.MarkFlagRequired("profile")
	_ = transitCmd.MarkFlagRequired("date")
}

func runTransit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	profile, err := a.profileWithChart(transitProfile)
	if err != nil {
		return err
	}

	on, err := parseUTCDate(transitDate)
	if err != nil {
		return err
	}

	tropical, err := a.source.PositionsAt(on)
	if err != nil {
		return err
	}
	ayanamsa := vedic.ApproximateLahiriAyanamsa(on)
	sidereal := make(map[string]float64, len(tropical))
	for planet, res := range tropical {
		sidereal[planet] = vedic.TropicalToSidereal(res.Longitude, ayanamsa)
	}

	snap := transit.Compute(profile.Chart, sidereal, on)
	fmt.Println(a.renderer.Transit(context.Background(), snap.Highlights))
	for _, pos := range snap.Positions {
		fmt.Printf("%s: %s | H(Lagna)=%d | H(Moon)=%d\n",
			pos.PlanetName, pos.Sign, pos.HouseFromLagna, pos.HouseFromMoon)
	}
	return nil
}
