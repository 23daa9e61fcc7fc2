package cli

import (
	"github.com/spf13/cobra"

	"hotel-booking/config"
	"hotel-booking/utils"
)

// NewRootCmd builds the hotelfinder command tree.
func NewRootCmd(version string) *cobra.Command {
	a := newApp(config.Load(), utils.NewLogger())
	return newRootCmd(a, version)
}

func newRootCmd(a *app, version string) *cobra.Command {
	var source string

	rootCmd := &cobra.Command{
		Use:   "hotelfinder",
		Short: "Browse hotel rooms and guest experiences from the terminal",
		Long: `hotelfinder filters and sorts the hotel room catalog and the guest
experiences board, and accepts new reviews for the current session.

The catalog is read once at startup from the source named by CATALOG_SOURCE
(static, csv or postgres). Reviews added here are not saved.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if source != "" {
				a.cfg.CatalogSource = source
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&source, "source", "", "Catalog source: static, csv or postgres (overrides CATALOG_SOURCE)")

	reviewsCmd := newReviewsCmd(a)
	reviewsCmd.AddCommand(newAddReviewCmd(a))

	catalogCmd := newCatalogCmd()
	catalogCmd.AddCommand(newSeedCmd(a))

	rootCmd.AddCommand(newRoomsCmd(a))
	rootCmd.AddCommand(reviewsCmd)
	rootCmd.AddCommand(newSessionCmd(a))
	rootCmd.AddCommand(catalogCmd)

	return rootCmd
}
