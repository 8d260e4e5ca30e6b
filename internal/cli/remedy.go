package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajveda/jyotish/internal/remedy"
)

var remedyPlanet string

// remedyCmd looks up advisory remedies and gemstones for a planet
var remedyCmd = &cobra.Command{
	Use:   "remedy",
	Short: "Show advisory remedies and gemstones for a planet",
	Long: `Remedy lists soft-tone Lal Kitab style advisories and gemstone
suggestions from the local data tables.

Example:
  jyotish remedy --planet Saturn`,
	RunE: runRemedy,
}

func init() {
	rootCmd.AddCommand(remedyCmd)

	remedyCmd.Flags().StringVar(&remedyPlanet, "planet", "", "planet name")
	_ = remedyCmd.MarkFlagRequired("planet")
}

func runRemedy(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	advisories, err := remedy.LoadAdvisories(a.cfg.Remedy.AdvisoriesPath)
	if err != nil {
		return err
	}
	gemstones, err := remedy.LoadGemstones(a.cfg.Remedy.GemstonesPath)
	if err != nil {
		return err
	}

	texts := remedy.AdvisoriesFor(remedyPlanet, advisories)
	stones := remedy.GemstonesFor(remedyPlanet, gemstones)
	if len(texts) == 0 && len(stones) == 0 {
		fmt.Printf("No remedies recorded for %s.\n", remedyPlanet)
		return nil
	}

	if len(texts) > 0 {
		fmt.Printf("Remedies for %s:\n", remedyPlanet)
		for _, text := range texts {
			fmt.Printf("- %s\n", text)
		}
	}
	if len(stones) > 0 {
		fmt.Printf("Gemstones for %s:\n", remedyPlanet)
		for _, stone := range stones {
			fmt.Printf("- %s\n", stone)
		}
	}
	return nil
}
