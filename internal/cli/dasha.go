package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rajveda/jyotish/internal/model"
)

var (
	dashaProfile string
	dashaFrom    string
	dashaTo      string
	dashaOn      string
)

// dashaCmd groups Vimshottari dasha commands
var dashaCmd = &cobra.Command{
	Use:   "dasha",
	Short: "Vimshottari dasha commands",
}

var dashaTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show dasha periods overlapping a date range",
	Long: `Timeline prints every maha, antar, and pratyantar period that
overlaps the requested range.

Example:
  jyotish dasha timeline --profile "Asha Rao" --from 2024-01-01 --to 2026-01-01`,
	RunE: runDashaTimeline,
}

var dashaNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Show the running dasha levels for a date",
	RunE:  runDashaNow,
}

func init() {
	rootCmd.AddCommand(dashaCmd)
	dashaCmd.AddCommand(dashaTimelineCmd)
	dashaCmd.AddCommand(dashaNowCmd)

	dashaCmd.PersistentFlags().StringVar(&dashaProfile, "profile", "", "profile name")
	_ = dashaCmd.MarkPersistentFlagRequired("profile")

	dashaTimelineCmd.Flags().StringVar(&dashaFrom, "from", "", "range start (YYYY-MM-DD)")
	dashaTimelineCmd.Flags().StringVar(&dashaTo, "to", "", "range end (YYYY-MM-DD)")
	_ = dashaTimelineCmd.MarkFlagRequired("from")
	_ = dashaTimelineCmd.MarkFlagRequired("to")

	dashaNowCmd.Flags().StringVar(&dashaOn, "on", "", "date to inspect (YYYY-MM-DD, default today)")
}

func parseUTCDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return t.UTC(), nil
}

func runDashaTimeline(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	profile, err := a.profileWithChart(dashaProfile)
	if err != nil {
		return err
	}
	periods, err := a.dashaTimeline(profile)
	if err != nil {
		return err
	}

	from, err := parseUTCDate(dashaFrom)
	if err != nil {
		return err
	}
	to, err := parseUTCDate(dashaTo)
	if err != nil {
		return err
	}

	for _, p := range periods {
		if !p.Start.After(to) && !p.End.Before(from) {
			fmt.Printf("%-10s %-8s %s -> %s\n",
				p.Level, p.Lord, p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
		}
	}
	return nil
}

func runDashaNow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	profile, err := a.profileWithChart(dashaProfile)
	if err != nil {
		return err
	}
	periods, err := a.dashaTimeline(profile)
	if err != nil {
		return err
	}

	on := time.Now().UTC()
	if dashaOn != "" {
		on, err = parseUTCDate(dashaOn)
		if err != nil {
			return err
		}
	}

	maha, antar, pratyantar := a.engine.Locate(periods, on)
	lord := func(p *model.DashaPeriod) string {
		if p == nil {
			return ""
		}
		return p.Lord
	}
	fmt.Println(a.renderer.DashaNow(context.Background(), lord(maha), lord(antar), lord(pratyantar)))
	return nil
}
