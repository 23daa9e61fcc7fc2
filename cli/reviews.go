package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/storage"
)

type reviewsOptions struct {
	query     string
	minRating string
	json      bool
	summary   bool
	export    string
}

func newReviewsCmd(a *app) *cobra.Command {
	var opts reviewsOptions

	cmd := &cobra.Command{
		Use:     "reviews",
		Aliases: []string{"experiences"},
		Short:   "Search guest experiences",
		Long: fmt.Sprintf(`List guest experiences, newest first, matching a free-text query over
guest, title and text, with at least the given rating.

Rating thresholds offered by the board: %v`, services.RatingThresholds),
		Example: `  hotelfinder reviews --query rooftop
  hotelfinder reviews --min-rating 4.5 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReviews(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Search reviews, guests, keywords")
	cmd.Flags().StringVarP(&opts.minRating, "min-rating", "m", "0", "Minimum rating (0 to 5)")
	cmd.Flags().BoolVarP(&opts.json, "json", "j", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print the average rating and top rated reviews")
	cmd.Flags().StringVar(&opts.export, "export", "", "Also write the view to this CSV file")

	return cmd
}

func runReviews(cmd *cobra.Command, a *app, opts reviewsOptions) error {
	minRating, err := services.ParseThreshold(opts.minRating)
	if err != nil {
		return err
	}

	_, reviews, err := a.loadBoards(cmd.Context())
	if err != nil {
		return err
	}

	state := services.Reduce(services.ViewState{}, services.SetQuery{Query: opts.query})
	state = services.Reduce(state, services.SetMinThreshold{Value: minRating})

	return renderReviews(cmd, a, reviews.View(state), state.Selection, opts)
}

func renderReviews(cmd *cobra.Command, a *app, view services.View[*models.Review], sel services.Selection, opts reviewsOptions) error {
	out := cmd.OutOrStdout()

	if opts.export != "" {
		w, err := storage.NewCSVWriter(opts.export)
		if err != nil {
			return err
		}
		defer w.Close()
		if err := w.WriteReviews(view.Records); err != nil {
			return err
		}
		a.logger.Info("[reviews] Wrote %d reviews to %s", len(view.Records), opts.export)
	}

	if opts.json {
		return writeJSON(out, view, sel)
	}

	printReviews(out, view, sel)
	if opts.summary {
		insights := services.NewInsightService(a.logger)
		insights.PrintReviews(out, insights.Reviews(view))
	}
	return nil
}

func newAddReviewCmd(a *app) *cobra.Command {
	var form models.ReviewForm
	var opts reviewsOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a review and show the board with it highlighted",
		Long: `Validate and add a review for this run. All fields are required and the
rating must be between 0 and 5 in steps of 0.5. The review is not saved.`,
		Example: `  hotelfinder reviews add --guest "Meera" --title "Quiet floor" --text "Slept well." --rating 4.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reviews, err := a.loadBoards(cmd.Context())
			if err != nil {
				return err
			}

			state, added, err := reviews.Submit(services.ViewState{}, form)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added review %s\n\n", added.ID)
			return renderReviews(cmd, a, reviews.View(state), state.Selection, opts)
		},
	}

	cmd.Flags().StringVar(&form.Guest, "guest", "", "Guest name")
	cmd.Flags().StringVar(&form.Title, "title", "", "Review title")
	cmd.Flags().StringVar(&form.Text, "text", "", "Review text")
	cmd.Flags().StringVar(&form.Rating, "rating", "", "Rating (0 to 5)")
	cmd.Flags().BoolVarP(&opts.json, "json", "j", false, "Output as JSON")

	return cmd
}
