package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rajveda/jyotish/internal/model"
)

var (
	profileName  string
	profileDOB   string
	profileTOB   string
	profileTZ    string
	profileLat   float64
	profileLon   float64
	profileSex   string
	profileNotes string
)

// profileCmd groups profile management commands
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage birth profiles",
}

var profileCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new birth profile and computed chart",
	Long: `Create stores a birth profile and immediately computes its Rashi chart.

Example:
  jyotish profile create --name "Asha Rao" --dob 1990-05-15 --tob 06:30 \
    --tz Asia/Kolkata --lat 12.97 --lon 77.59`,
	RunE: runProfileCreate,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all stored profiles",
	RunE:  runProfileList,
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileCreateCmd)
	profileCmd.AddCommand(profileListCmd)

	profileCreateCmd.Flags().StringVar(&profileName, "name", "", "profile name")
	profileCreateCmd.Flags().StringVar(&profileDOB, "dob", "", "date of birth (YYYY-MM-DD)")
	profileCreateCmd.Flags().StringVar(&profileTOB, "tob", "", "time of birth (HH:MM)")
	profileCreateCmd.Flags().StringVar(&profileTZ, "tz", "Asia/Kolkata", "IANA time zone of birth place")
	profileCreateCmd.Flags().Float64Var(&profileLat, "lat", 0, "birth latitude in degrees")
	profileCreateCmd.Flags().Float64Var(&profileLon, "lon", 0, "birth longitude in degrees")
	profileCreateCmd.Flags().StringVar(&profileSex, "gender", "", "gender (optional)")
	profileCreateCmd.Flags().StringVar(&profileNotes, "notes", "", "free-form notes (optional)")

	_ = profileCreateCmd.MarkFlagRequired("name")
	_ = profileCreateCmd.MarkFlagRequired("dob")
	_ = profileCreateCmd.MarkFlagRequired("tob")
	_ = profileCreateCmd.MarkFlagRequired("lat")
	_ = profileCreateCmd.MarkFlagRequired("lon")
}

func runProfileCreate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	birth := model.BirthDetails{
		DateOfBirth: profileDOB,
		TimeOfBirth: profileTOB,
		Timezone:    profileTZ,
		Latitude:    profileLat,
		Longitude:   profileLon,
		Gender:      profileSex,
		Notes:       profileNotes,
	}

	// Build the chart first so malformed birth input fails before
	// anything is persisted.
	built, err := a.builder.Build(profileName, birth)
	if err != nil {
		return fmt.Errorf("build chart: %w", err)
	}

	profile, err := a.store.Create(profileName, birth)
	if err != nil {
		return err
	}
	profile.Chart = built
	if err := a.store.Upsert(profile); err != nil {
		return err
	}

	fmt.Printf("Created profile: %s (%s)\n", profile.Name, profile.ID)
	return nil
}

func runProfileList(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	profiles, err := a.store.List()
	if err != nil {
		return err
	}
	for _, p := range profiles {
		fmt.Printf("- %s [%s]\n", p.Name, p.ID)
	}
	return nil
}
