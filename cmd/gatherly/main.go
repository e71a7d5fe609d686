// Command gatherly is a terminal client for the Gatherly API: browse
// and search events, manage your own, and join or leave events as an
// attendee.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/gatherly/gatherly-go/internal/client"
	"github.com/gatherly/gatherly-go/internal/model"
)

const usage = `usage: gatherly <command> [arguments]

  register          create an account and log in
  login             log in with email and password
  logout            discard the local session
  whoami            show the logged-in user
  events [-q text]  list events, optionally filtered
  event <id>        show one event and its attendees
  create            create an event (flags: -name -desc -location -at)
  update <id>       update an event you own (same flags as create)
  delete <id>       delete an event you own
  join <id>         join an event as an attendee
  leave <id>        leave an event
  mine              your joined events, split into upcoming and past
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "gatherly:", client.ErrorMessage(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	_ = godotenv.Load()

	baseURL := getEnv("GATHERLY_API_URL", "http://localhost:8080/api/v1")
	credsDir := os.Getenv("GATHERLY_CONFIG_DIR")
	if credsDir == "" {
		userDir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolving config dir: %w", err)
		}
		credsDir = filepath.Join(userDir, "gatherly")
	}

	creds := client.NewFileCredentialStore(credsDir)

	var store *client.SessionStore
	api := client.New(baseURL, nil, creds, func() {
		store.Logout()
		fmt.Fprintln(os.Stderr, "your session has expired, please log in again")
	})
	store = client.NewSessionStore(api, creds)
	store.Hydrate()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "register":
		return cmdRegister(ctx, store)
	case "login":
		return cmdLogin(ctx, store)
	case "logout":
		store.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return cmdWhoami(store)
	case "events":
		return cmdEvents(ctx, api, args[1:])
	case "event":
		return cmdEvent(ctx, api, args[1:])
	case "create":
		return cmdCreate(ctx, api, store, args[1:])
	case "update":
		return cmdUpdate(ctx, api, store, args[1:])
	case "delete":
		return cmdDelete(ctx, api, store, args[1:])
	case "join":
		return cmdJoin(ctx, api, store, args[1:])
	case "leave":
		return cmdLeave(ctx, api, store, args[1:])
	case "mine":
		return cmdMine(ctx, api, store)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
		return nil
	}
}

func cmdRegister(ctx context.Context, store *client.SessionStore) error {
	var name, email, password string
	fmt.Print("name: ")
	fmt.Scanln(&name)
	fmt.Print("email: ")
	fmt.Scanln(&email)
	fmt.Print("password: ")
	fmt.Scanln(&password)

	if err := store.Register(ctx, name, email, password); err != nil {
		return err
	}
	fmt.Println("account created, you are now logged in")
	return nil
}

func cmdLogin(ctx context.Context, store *client.SessionStore) error {
	var email, password string
	fmt.Print("email: ")
	fmt.Scanln(&email)
	fmt.Print("password: ")
	fmt.Scanln(&password)

	if err := store.Login(ctx, email, password); err != nil {
		return err
	}
	user, _ := store.CurrentUser()
	fmt.Printf("welcome back, %s\n", user.Name)
	return nil
}

func cmdWhoami(store *client.SessionStore) error {
	user, ok := store.CurrentUser()
	if !ok {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s <%s> (id %d)\n", user.Name, user.Email, user.ID)
	return nil
}

func cmdEvents(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	query := fs.String("q", "", "filter by name, description or location")
	fs.Parse(args)

	events, err := api.ListEvents(ctx)
	if err != nil {
		return err
	}

	events = client.FilterEvents(events, *query)
	if len(events) == 0 {
		fmt.Println("no events found")
		return nil
	}

	printEvents(events)
	return nil
}

func cmdEvent(ctx context.Context, api *client.Client, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}

	event, err := api.GetEvent(ctx, id)
	if err != nil {
		if client.IsNotFound(err) {
			fmt.Println("event not found — run `gatherly events` to browse")
			return nil
		}
		return err
	}

	fmt.Printf("%s\n  when:     %s\n  where:    %s\n  about:    %s\n",
		event.Name, event.DateTime.Local().Format("Mon, 02 Jan 2006 15:04"),
		event.Location, event.Description)

	attendees, err := api.ListAttendees(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("  going:    %d\n", len(attendees))
	for _, u := range attendees {
		fmt.Printf("    - %s <%s>\n", u.Name, u.Email)
	}
	return nil
}

func cmdCreate(ctx context.Context, api *client.Client, store *client.SessionStore, args []string) error {
	if err := requireLogin(store); err != nil {
		return err
	}

	req, err := parseEventFlags("create", args)
	if err != nil {
		return err
	}

	event, err := api.CreateEvent(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("created event %d: %s\n", event.ID, event.Name)
	return nil
}

func cmdUpdate(ctx context.Context, api *client.Client, store *client.SessionStore, args []string) error {
	if err := requireLogin(store); err != nil {
		return err
	}

	id, err := argID(args)
	if err != nil {
		return err
	}

	req, err := parseEventFlags("update", args[1:])
	if err != nil {
		return err
	}

	event, err := api.UpdateEvent(ctx, id, req)
	if err != nil {
		return err
	}
	fmt.Printf("updated event %d: %s\n", event.ID, event.Name)
	return nil
}

func cmdDelete(ctx context.Context, api *client.Client, store *client.SessionStore, args []string) error {
	if err := requireLogin(store); err != nil {
		return err
	}

	id, err := argID(args)
	if err != nil {
		return err
	}

	if err := api.DeleteEvent(ctx, id); err != nil {
		return err
	}
	fmt.Printf("deleted event %d\n", id)
	return nil
}

func cmdJoin(ctx context.Context, api *client.Client, store *client.SessionStore, args []string) error {
	user, ok := store.CurrentUser()
	if !ok {
		return fmt.Errorf("you must be logged in")
	}

	id, err := argID(args)
	if err != nil {
		return err
	}

	if _, err := api.JoinEvent(ctx, id, user.ID); err != nil {
		return err
	}
	fmt.Printf("you are attending event %d\n", id)
	return nil
}

func cmdLeave(ctx context.Context, api *client.Client, store *client.SessionStore, args []string) error {
	user, ok := store.CurrentUser()
	if !ok {
		return fmt.Errorf("you must be logged in")
	}

	id, err := argID(args)
	if err != nil {
		return err
	}

	if err := api.LeaveEvent(ctx, id, user.ID); err != nil {
		return err
	}
	fmt.Printf("you left event %d\n", id)
	return nil
}

func cmdMine(ctx context.Context, api *client.Client, store *client.SessionStore) error {
	user, ok := store.CurrentUser()
	if !ok {
		return fmt.Errorf("you must be logged in")
	}

	events, err := api.ListUserEvents(ctx, user.ID)
	if err != nil {
		return err
	}

	upcoming, past := client.PartitionEvents(events, time.Now())

	fmt.Printf("upcoming (%d)\n", len(upcoming))
	printEvents(upcoming)
	fmt.Printf("past (%d)\n", len(past))
	printEvents(past)
	return nil
}

func requireLogin(store *client.SessionStore) error {
	if !store.IsAuthenticated() {
		return fmt.Errorf("you must be logged in")
	}
	return nil
}

func argID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("an event id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid event id %q", args[0])
	}
	return id, nil
}

func parseEventFlags(name string, args []string) (model.EventRequest, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	eventName := fs.String("name", "", "event name")
	desc := fs.String("desc", "", "event description")
	location := fs.String("location", "", "event location")
	at := fs.String("at", "", "event time, RFC 3339 (e.g. 2026-10-01T19:00:00Z)")
	fs.Parse(args)

	when, err := time.Parse(time.RFC3339, *at)
	if err != nil {
		return model.EventRequest{}, fmt.Errorf("invalid -at value %q: %w", *at, err)
	}

	return model.EventRequest{
		Name:        *eventName,
		Description: *desc,
		Location:    *location,
		DateTime:    when,
	}, nil
}

func printEvents(events []model.EventResponse) {
	if len(events) == 0 {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tNAME\tLOCATION")
	for _, e := range events {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			e.ID, e.DateTime.Local().Format("2006-01-02 15:04"), e.Name, e.Location)
	}
	w.Flush()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
