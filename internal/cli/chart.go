package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajveda/jyotish/internal/yoga"
)

var chartProfile string

// chartCmd groups chart view commands
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart view commands",
}

var chartSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show chart summary with detected yogas",
	RunE:  runChartSummary,
}

var chartPlacementsCmd = &cobra.Command{
	Use:   "placements",
	Short: "Print planet placements in a tabular text layout",
	RunE:  runChartPlacements,
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.AddCommand(chartSummaryCmd)
	chartCmd.AddCommand(chartPlacementsCmd)

	chartCmd.PersistentFlags().StringVar(&chartProfile, "profile", "", "profile name")
	_ = chartCmd.MarkPersistentFlagRequired("profile")
}

func runChartSummary(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	profile, err := a.profileWithChart(chartProfile)
	if err != nil {
		return err
	}

	rules, err := yoga.LoadRules(a.cfg.Yoga.RulesPath)
	if err != nil {
		return err
	}
	detected := yoga.Detect(profile.Chart, rules)

	summary := a.renderer.ChartSummary(
		context.Background(),
		profile.Name,
		profile.Chart.LagnaSign,
		profile.Chart.MoonSign,
		yoga.Names(detected),
	)
	fmt.Println(summary)
	return nil
}

func runChartPlacements(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	profile, err := a.profileWithChart(chartProfile)
	if err != nil {
		return err
	}

	fmt.Println("planet | sign | degree | house | nakshatra | pada")
	for _, p := range profile.Chart.PlanetPositions {
		fmt.Printf("%-8s | %-11s | %7.2f | %5d | %-16s | %d\n",
			p.PlanetName, p.Sign, p.SiderealLongitude, p.House, p.NakshatraName, p.NakshatraPada)
	}
	return nil
}
