package cli

import (
	"github.com/spf13/cobra"

	"hotel-booking/storage"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Manage the catalog backing store",
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace the PostgreSQL catalog with the built-in sample catalog",
		Long: `Connects using the POSTGRES_* settings, creates the rooms and reviews
tables if needed and replaces their contents with the built-in sample
catalog. Run with CATALOG_SOURCE=postgres afterwards to browse it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pg, err := storage.NewPostgresCatalog(ctx, a.cfg.DSN(), a.retry())
			if err != nil {
				a.logger.Error("Failed to connect to PostgreSQL: %v", err)
				return err
			}
			defer pg.Close()

			return pg.SeedCatalog(ctx, storage.SampleRooms(), storage.SampleReviews())
		},
	}
}
