package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"hotel-booking/models"
	"hotel-booking/services"
)

const sessionHelp = `Commands:
  page rooms|reviews     switch listing
  query <text>           free-text search (reviews); empty clears
  min <rating>           minimum rating (reviews)
  type <room type>       toggle a room type (rooms)
  price <min> to <max>   toggle a price range (rooms)
  sort [option]          Price Low to High | Price High to Low | Newest First; empty resets
  clear                  reset filters and sort
  select <id>            highlight a record
  set <field> <value>    edit the review draft (guest, title, text, rating)
  submit                 submit the review draft
  add k=v&k=v...         submit a review in one line, e.g. add guest=A&title=B&text=C&rating=4
  show                   print the current listing
  help | quit`

var errQuit = errors.New("quit")

// Session replays line-oriented events against the two listings, keeping one
// ViewState per page as the page component would.
type Session struct {
	app     *app
	rooms   *services.RoomBoard
	reviews *services.ReviewBoard

	page        string
	roomState   services.ViewState
	reviewState services.ViewState
	out         io.Writer
}

func newSession(a *app, rooms *services.RoomBoard, reviews *services.ReviewBoard, out io.Writer) *Session {
	return &Session{app: a, rooms: rooms, reviews: reviews, page: "reviews", out: out}
}

func newSessionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Interactive filtering session over stdin",
		Long:  "Reads one command per line from stdin and prints the listing after each change.\n\n" + sessionHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			rooms, reviews, err := a.loadBoards(cmd.Context())
			if err != nil {
				return err
			}
			s := newSession(a, rooms, reviews, cmd.OutOrStdout())
			return s.Run(cmd.InOrStdin())
		},
	}
}

// Run processes commands until EOF or quit. Command errors are printed, not returned.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		err := s.Handle(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "! %v\n", err)
		}
	}
	return scanner.Err()
}

// Handle applies one command line.
func (s *Session) Handle(line string) error {
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "help":
		fmt.Fprintln(s.out, sessionHelp)
		return nil
	case "quit", "exit":
		return errQuit
	case "show":
	case "page":
		if arg != "rooms" && arg != "reviews" {
			return fmt.Errorf("unknown page %q", arg)
		}
		s.page = arg
	case "query":
		s.apply(services.SetQuery{Query: arg})
	case "min":
		v, err := services.ParseThreshold(arg)
		if err != nil {
			return err
		}
		s.apply(services.SetMinThreshold{Value: v})
	case "type":
		s.page = "rooms"
		s.roomState = services.Reduce(s.roomState, services.ToggleCategory{
			Value: arg, On: !s.roomState.Filter.Categories.Has(arg),
		})
	case "price":
		if _, ok := services.ParseBucket(arg); !ok {
			s.app.logger.Warn("[session] Price range %q is not of the form \"min to max\" and matches nothing", arg)
		}
		s.page = "rooms"
		s.roomState = services.Reduce(s.roomState, services.ToggleBucket{
			Label: arg, On: !s.roomState.Filter.Buckets.Has(arg),
		})
	case "sort":
		spec, err := services.ParseSort(arg)
		if err != nil {
			return err
		}
		s.apply(services.SetSort{Sort: spec})
	case "clear":
		s.apply(services.ClearFilters{})
	case "select":
		s.apply(services.Activate{ID: arg})
	case "set":
		field, value, _ := strings.Cut(arg, " ")
		s.reviewState = services.Reduce(s.reviewState, services.EditDraft{Field: field, Value: value})
		return nil
	case "submit":
		return s.submit(s.reviewState.Draft)
	case "add":
		values, err := url.ParseQuery(arg)
		if err != nil {
			return fmt.Errorf("add: %w", err)
		}
		form, err := services.DecodeReviewForm(values)
		if err != nil {
			return err
		}
		return s.submit(form)
	default:
		return fmt.Errorf("unknown command %q (try help)", verb)
	}

	s.print()
	return nil
}

func (s *Session) submit(form models.ReviewForm) error {
	state, added, err := s.reviews.Submit(s.reviewState, form)
	s.reviewState = state
	if err != nil {
		return err
	}
	s.page = "reviews"
	fmt.Fprintf(s.out, "Added review %s\n", added.ID)
	s.print()
	return nil
}

func (s *Session) apply(ev services.Event) {
	if s.page == "rooms" {
		s.roomState = services.Reduce(s.roomState, ev)
		return
	}
	s.reviewState = services.Reduce(s.reviewState, ev)
}

func (s *Session) print() {
	if s.page == "rooms" {
		printRooms(s.out, s.rooms.View(s.roomState), s.roomState.Selection)
		return
	}
	printReviews(s.out, s.reviews.View(s.reviewState), s.reviewState.Selection)
}
