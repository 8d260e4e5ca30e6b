package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	matchProfile string
	matchWith    string
)

// matchCmd scores Ashta Kuta compatibility between two profiles
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score Ashta Kuta compatibility between two profiles",
	Long: `Match computes the classical 36-point Guna Milan score from both
profiles' Moon placements and narrates the outcome.

Example:
  jyotish match --profile "Asha Rao" --with "Rohan Iyer"`,
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&matchProfile, "profile", "", "first profile name")
	matchCmd.Flags().StringVar(&matchWith, "with", "", "second profile name")
	_ = matchCmd.MarkFlagRequired("profile")
	_ = matchCmd.MarkFlagRequired("with")
}

func runMatch(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	first, err := a.profileWithChart(matchProfile)
	if err != nil {
		return err
	}
	second, err := a.profileWithChart(matchWith)
	if err != nil {
		return err
	}

	result, err := a.scorer.Score(first.Chart, second.Chart)
	if err != nil {
		return err
	}

	fmt.Println(a.renderer.Compatibility(context.Background(), result))

	breakdown, err := json.MarshalIndent(result.PerKutaScores, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(breakdown))
	return nil
}
