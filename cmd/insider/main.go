// Command insider is a terminal front end for the Campus Insider API,
// wiring the page controllers to a line-based shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/campusinsider/campus-insider/internal/client"
	"github.com/campusinsider/campus-insider/internal/client/pages"
	"github.com/campusinsider/campus-insider/internal/client/search"
	"github.com/campusinsider/campus-insider/internal/client/session"
	"github.com/campusinsider/campus-insider/internal/client/table"
	"github.com/campusinsider/campus-insider/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var baseURL string
	flag.StringVar(&baseURL, "api", cfg.Client.BaseURL, "backend base URL")
	flag.Parse()

	api := client.NewAPIClient(baseURL, cfg.Client.RequestTimeout)
	sessions, err := session.NewHolder(cfg.Client.StateDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open session storage: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := run(ctx, api, sessions, args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, api *client.APIClient, sessions *session.Holder, args []string) error {
	command, rest := args[0], args[1:]

	switch command {
	case "login":
		if len(rest) != 2 {
			return fmt.Errorf("usage: insider login <username> <password>")
		}
		page := pages.NewLoginPage(api, sessions)
		if err := page.Submit(ctx, rest[0], rest[1]); err != nil {
			return err
		}
		fmt.Printf("signed in as %s\n", rest[0])
		return nil

	case "logout":
		if err := pages.NewLoginPage(api, sessions).Logout(); err != nil {
			return err
		}
		fmt.Println("signed out")
		return nil

	case "search":
		query := strings.Join(rest, " ")
		page := pages.NewUniversitySearchPage(api)
		page.Search(ctx, query, "", "")
		if err := page.Err(); err != nil {
			return err
		}
		printTable(page.Table().Columns(), page.Table().RenderPage())
		return nil

	case "university":
		if len(rest) < 1 {
			return fmt.Errorf("usage: insider university <name> [state]")
		}
		state := ""
		if len(rest) > 1 {
			state = rest[1]
		}
		page := pages.NewUniversityDetailPage(api)
		page.Load(ctx, rest[0], state)
		if err := page.Err(); err != nil {
			return err
		}
		if u := page.University(); u != nil {
			fmt.Printf("%s (%s)\n", u.Name, u.State)
		}
		for _, campus := range page.Campuses() {
			fmt.Printf("  campus: %s\n", campus.Name)
		}
		printTable(page.Table().Columns(), page.Table().RenderPage())
		return nil

	case "locations":
		if len(rest) < 1 {
			return fmt.Errorf("usage: insider locations <university> [query]")
		}
		page := pages.NewLocationSearchPage(ctx, api, rest[0], "")
		defer page.Close()
		filters := search.Filters{}
		if len(rest) > 1 {
			filters.Query = strings.Join(rest[1:], " ")
		}
		page.SetFilters(filters)
		page.Refresh()
		if err := page.Err(); err != nil {
			return err
		}
		printTable(page.Table().Columns(), page.Table().RenderPage())
		return nil

	case "ratings":
		if len(rest) != 2 {
			return fmt.Errorf("usage: insider ratings <university> <location>")
		}
		page := pages.NewRatingsPage(api, sessions)
		page.Load(ctx, rest[0], rest[1])
		if err := page.Err(); err != nil {
			return err
		}
		detail := page.Detail()
		if detail == nil || detail.Location == nil {
			fmt.Println("location not found")
			return nil
		}
		fmt.Printf("%s\n", detail.Location.Name)
		for _, rating := range detail.Ratings {
			fmt.Printf("  %d/10 by %s (%s): %s\n", rating.Score, rating.Username, rating.Role, rating.Comment)
		}
		return nil

	case "admin":
		return runAdmin(ctx, api, sessions, rest)

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runAdmin(ctx context.Context, api *client.APIClient, sessions *session.Holder, args []string) error {
	page, err := pages.NewAdminPage(api, sessions)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: insider admin <users|requests|universities|add-university|add-campus>")
	}

	switch args[0] {
	case "users":
		page.LoadUsers(ctx)
		if err := page.Err(); err != nil {
			return err
		}
		for _, user := range page.Users() {
			fmt.Printf("%s\t%s\n", user.Username, user.Role)
		}
		return nil

	case "requests":
		page.LoadRequests(ctx)
		if err := page.Err(); err != nil {
			return err
		}
		for _, request := range page.Requests() {
			fmt.Printf("%s\t%s\t%s\n", request.RoomName, request.UniversityName, request.Status)
		}
		return nil

	case "universities":
		page.LoadUniversities(ctx)
		if err := page.Err(); err != nil {
			return err
		}
		for _, u := range page.Universities() {
			fmt.Printf("%d\t%s\t%s\n", u.ID, u.Name, u.State)
		}
		return nil

	case "add-university":
		if len(args) < 3 {
			return fmt.Errorf("usage: insider admin add-university <name> <state> [wiki-url]")
		}
		wiki := ""
		if len(args) > 3 {
			wiki = args[3]
		}
		return page.AddUniversity(ctx, args[1], args[2], wiki)

	case "add-campus":
		if len(args) != 3 {
			return fmt.Errorf("usage: insider admin add-campus <university-id> <name>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("university-id must be an integer")
		}
		return page.AddCampus(ctx, id, args[2])

	default:
		return fmt.Errorf("unknown admin command %q", args[0])
	}
}

func printTable(columns []table.Column, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	headers := make([]string, 0, len(columns))
	for _, col := range columns {
		headers = append(headers, col.Label)
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: insider [-api URL] <command>

commands:
  login <username> <password>
  logout
  search [query]
  university <name> [state]
  locations <university> [query]
  ratings <university> <location>
  admin <users|requests|universities|add-university|add-campus>`)
}
