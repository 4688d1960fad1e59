package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	apiclient "github.com/donaldgifford/tablewatch/internal/api/client"
	domain "github.com/donaldgifford/tablewatch/pkg/types"
)

func restaurantsCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "restaurants",
		Aliases: []string{"restaurant", "r"},
		Short:   "Manage restaurants",
		Long: "Manage the restaurant catalog. Each restaurant carries booking URLs from\n" +
			"which the server derives its Resy and OpenTable booking targets.",
	}

	root.AddCommand(
		restaurantListCmd(),
		restaurantGetCmd(),
		restaurantCreateCmd(),
		restaurantUpdateCmd(),
		restaurantImportCmd(),
	)

	return root
}

func restaurantListCmd() *cobra.Command {
	var (
		params  apiclient.ListRestaurantsParams
		visited bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List restaurants",
		Example: `  twctl restaurants list
  twctl restaurants list --neighborhood "West Village" --monitored
  twctl restaurants list -q pasta --visited=false --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("visited") {
				params.Visited = &visited
			}
			resp, err := newClient().ListRestaurants(context.Background(), &params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Restaurants) == 0 {
				fmt.Fprintln(out, "No restaurants found.")
				return nil
			}
			if err := printRestaurantsTable(out, resp.Restaurants); err != nil {
				return err
			}
			fmt.Fprintf(out, "\nShowing %d of %d.\n", len(resp.Restaurants), resp.Total)
			return nil
		},
	}
	cmd.Flags().StringVarP(&params.Search, "search", "q", "", "search name, neighborhood, cuisine and notes")
	cmd.Flags().StringVar(&params.Neighborhood, "neighborhood", "", "filter by neighborhood")
	cmd.Flags().StringVar(&params.Cuisine, "cuisine", "", "filter by cuisine")
	cmd.Flags().BoolVar(&visited, "visited", false, "filter by visited flag")
	cmd.Flags().BoolVar(&params.MonitoredOnly, "monitored", false, "only restaurants with monitoring enabled")
	cmd.Flags().IntVar(&params.Limit, "limit", 50, "maximum results")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "results to skip")
	cmd.Flags().
		StringVar(&params.OrderBy, "order-by", "", "sort order (name, priority, updated_at)")

	return cmd
}

func restaurantGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show restaurant details",
		Example: `  twctl restaurants get 0b6c...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newClient().GetRestaurant(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), r)
			}
			return printRestaurantDetail(cmd.OutOrStdout(), r)
		},
	}
}

// restaurantFlags binds the editable restaurant fields to a command.
type restaurantFlags struct {
	req     apiclient.RestaurantRequest
	monitor bool
}

func (f *restaurantFlags) bind(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.req.Name, "name", "", "restaurant name")
	fs.StringVar(&f.req.Neighborhood, "neighborhood", "", "neighborhood")
	fs.StringVar(&f.req.Cuisine, "cuisine", "", "cuisine")
	fs.StringVar((*string)(&f.req.Priority), "priority", "", "priority (normal, high, urgent)")
	fs.BoolVar(&f.req.Visited, "visited", false, "already visited")
	fs.StringVar(&f.req.Notes, "notes", "", "free-form notes")
	fs.BoolVar(&f.monitor, "monitor", true, "include in sweeps")
	fs.StringVar(&f.req.BookingURLs.Resy, "resy-url", "", "Resy venue URL")
	fs.StringVar(&f.req.BookingURLs.OpenTable, "opentable-url", "", "OpenTable restaurant URL")
	fs.StringVar(&f.req.BookingURLs.Google, "google-url", "", "Google Maps URL")
}

// apply copies the flags the user set onto req.
func (f *restaurantFlags) apply(cmd *cobra.Command, req *apiclient.RestaurantRequest) {
	fs := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("name", &req.Name, f.req.Name)
	set("neighborhood", &req.Neighborhood, f.req.Neighborhood)
	set("cuisine", &req.Cuisine, f.req.Cuisine)
	set("notes", &req.Notes, f.req.Notes)
	set("resy-url", &req.BookingURLs.Resy, f.req.BookingURLs.Resy)
	set("opentable-url", &req.BookingURLs.OpenTable, f.req.BookingURLs.OpenTable)
	set("google-url", &req.BookingURLs.Google, f.req.BookingURLs.Google)
	if fs.Changed("priority") {
		req.Priority = f.req.Priority
	}
	if fs.Changed("visited") {
		req.Visited = f.req.Visited
	}
	if fs.Changed("monitor") {
		monitor := f.monitor
		req.MonitorEnabled = &monitor
	}
}

func restaurantCreateCmd() *cobra.Command {
	var flags restaurantFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a restaurant",
		Long: "Create a restaurant. A Resy URL makes Resy the primary booking target;\n" +
			"OpenTable is searched by name as the fallback.",
		Example: `  twctl restaurants create --name Lilia --neighborhood Williamsburg \
    --cuisine Italian --priority high --resy-url https://resy.com/cities/ny/lilia`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(flags.req.Name) == "" {
				return errors.New("--name is required")
			}
			req := apiclient.RestaurantRequest{}
			flags.apply(cmd, &req)
			if req.MonitorEnabled == nil {
				monitor := flags.monitor
				req.MonitorEnabled = &monitor
			}

			created, err := newClient().CreateRestaurant(context.Background(), &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), created)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restaurant created: %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	flags.bind(cmd)

	return cmd
}

func restaurantUpdateCmd() *cobra.Command {
	var flags restaurantFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a restaurant",
		Long:  "Update a restaurant. Only the flags given are changed.",
		Example: `  twctl restaurants update 0b6c... --visited
  twctl restaurants update 0b6c... --monitor=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			existing, err := c.GetRestaurant(context.Background(), args[0])
			if err != nil {
				return err
			}

			req := requestFromRestaurant(existing)
			flags.apply(cmd, &req)

			updated, err := c.UpdateRestaurant(context.Background(), args[0], &req)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), updated)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Restaurant updated: %s (%s)\n", updated.Name, updated.ID)
			return nil
		},
	}
	flags.bind(cmd)

	return cmd
}

func requestFromRestaurant(r *domain.Restaurant) apiclient.RestaurantRequest {
	monitor := r.MonitorEnabled
	return apiclient.RestaurantRequest{
		Name:           r.Name,
		Neighborhood:   r.Neighborhood,
		Cuisine:        r.Cuisine,
		Priority:       r.Priority,
		Visited:        r.Visited,
		Notes:          r.Notes,
		MonitorEnabled: &monitor,
		BookingURLs:    r.BookingURLs,
	}
}

func restaurantImportCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create restaurants from a YAML file",
		Long: "Create every restaurant listed in a YAML file. The file is either a list\n" +
			"of restaurants or a mapping with a top-level restaurants key. Entries that\n" +
			"fail are reported and the import continues.",
		Example: `  twctl restaurants import restaurants.yaml
  twctl restaurants import restaurants.yaml --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			reqs, err := readRestaurants(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintf(out, "%d restaurants parsed, nothing created (dry run).\n", len(reqs))
				return nil
			}

			c := newClient()
			var failed int
			for i := range reqs {
				created, err := c.CreateRestaurant(context.Background(), &reqs[i])
				if err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %v\n", reqs[i].Name, err)
					continue
				}
				fmt.Fprintf(out, "  %s (%s)\n", created.Name, created.ID)
			}

			fmt.Fprintf(out, "Imported %d of %d restaurants.\n", len(reqs)-failed, len(reqs))
			if failed > 0 {
				return fmt.Errorf("%d restaurants failed to import", failed)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and validate without creating")

	return cmd
}

// readRestaurants parses an import document and checks every entry has a
// name.
func readRestaurants(r io.Reader) ([]apiclient.RestaurantRequest, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("import file is empty")
		}
		return nil, fmt.Errorf("parsing import file: %w", err)
	}

	var reqs []apiclient.RestaurantRequest
	body := &doc
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		body = doc.Content[0]
	}
	if body.Kind == yaml.SequenceNode {
		if err := body.Decode(&reqs); err != nil {
			return nil, fmt.Errorf("decoding restaurants: %w", err)
		}
	} else {
		var wrapped struct {
			Restaurants []apiclient.RestaurantRequest `yaml:"restaurants"`
		}
		if err := body.Decode(&wrapped); err != nil {
			return nil, fmt.Errorf("decoding restaurants: %w", err)
		}
		reqs = wrapped.Restaurants
	}

	var errs []error
	for i := range reqs {
		reqs[i].Name = strings.TrimSpace(reqs[i].Name)
		if reqs[i].Name == "" {
			errs = append(errs, fmt.Errorf("entry %d: name is required", i+1))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, errors.New("import file lists no restaurants")
	}
	return reqs, nil
}
