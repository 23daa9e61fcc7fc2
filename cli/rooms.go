package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/storage"
)

type roomsOptions struct {
	types   []string
	prices  []string
	sort    string
	json    bool
	summary bool
	export  string
}

func newRoomsCmd(a *app) *cobra.Command {
	var opts roomsOptions

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Filter and sort the room catalog",
		Long: fmt.Sprintf(`List hotel rooms narrowed by room type and price range.

Room types: %q
Price ranges: %q
Sort options: %q`, services.RoomTypes, services.PriceBuckets, sortLabels()),
		Example: `  hotelfinder rooms --type "Double Bed" --type "Luxury Bed"
  hotelfinder rooms --price "0 to 500" --price "500 to 1000" --sort "Price Low to High"
  hotelfinder rooms --summary
  hotelfinder rooms --export ./output/rooms.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRooms(cmd, a, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.types, "type", "t", nil, "Room type to include (repeatable)")
	cmd.Flags().StringArrayVarP(&opts.prices, "price", "p", nil, `Price range such as "500 to 1000" (repeatable)`)
	cmd.Flags().StringVarP(&opts.sort, "sort", "s", "", "Sort option")
	cmd.Flags().BoolVarP(&opts.json, "json", "j", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print price and location insights for the view")
	cmd.Flags().StringVar(&opts.export, "export", "", "Also write the view to this CSV file")

	return cmd
}

func runRooms(cmd *cobra.Command, a *app, opts roomsOptions) error {
	sort, err := services.ParseSort(opts.sort)
	if err != nil {
		return err
	}

	rooms, _, err := a.loadBoards(cmd.Context())
	if err != nil {
		return err
	}

	state := services.ViewState{Sort: sort}
	for _, t := range opts.types {
		state = services.Reduce(state, services.ToggleCategory{Value: t, On: true})
	}
	for _, p := range opts.prices {
		state = services.Reduce(state, services.ToggleBucket{Label: p, On: true})
	}
	for _, bad := range state.Filter.MalformedBuckets() {
		a.logger.Warn("[rooms] Price range %q is not of the form \"min to max\" and matches nothing", bad)
	}

	view := rooms.View(state)
	out := cmd.OutOrStdout()

	if opts.export != "" {
		if err := exportRooms(opts.export, view); err != nil {
			return err
		}
		a.logger.Info("[rooms] Wrote %d rooms to %s", len(view.Records), opts.export)
	}

	if opts.json {
		return writeJSON(out, view, state.Selection)
	}

	printRooms(out, view, state.Selection)
	if opts.summary {
		insights := services.NewInsightService(a.logger)
		insights.PrintRooms(out, insights.Rooms(view))
	}
	return nil
}

func exportRooms(path string, view services.View[*models.Room]) error {
	w, err := storage.NewCSVWriter(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.WriteRooms(view.Records)
}

func sortLabels() []string {
	labels := make([]string, 0, len(services.SortOptions))
	for _, s := range services.SortOptions {
		labels = append(labels, s.String())
	}
	return labels
}
