package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"aihub/internal/badge"
	"aihub/internal/catalog"
	"aihub/internal/filter"
	"aihub/internal/safemode"
	"aihub/internal/schema"
	"aihub/internal/seo"
	"aihub/internal/storage"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate every service and comparison record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := schema.LoadServices(a.cfg.CatalogDir)
			if err != nil {
				return reportInvalid(cmd.ErrOrStderr(), err)
			}
			comparisons, err := schema.LoadComparisons(a.cfg.ComparisonsDir, services)
			if err != nil {
				return reportInvalid(cmd.ErrOrStderr(), err)
			}
			a.log.Debug("catalog validated", "dir", a.cfg.CatalogDir)
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d services, %d comparisons\n", len(services), len(comparisons))
			return nil
		},
	}
}

func reportInvalid(w io.Writer, err error) error {
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	for _, p := range verr.Problems {
		fmt.Fprintln(w, p.String())
	}
	return fmt.Errorf("catalog invalid: %d problems", len(verr.Problems))
}

type cardView struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Rating       string   `json:"rating"`
	Pricing      string   `json:"pricing"`
	Status       string   `json:"status"`
	Badges       []string `json:"badges"`
	Blurred      bool     `json:"blurred"`
	PaymentGuide bool     `json:"paymentGuide"`
	URL          string   `json:"url"`
}

func newCardView(c catalog.Card) cardView {
	return cardView{
		Slug:         c.Service.Slug,
		Name:         c.Service.Name,
		Rating:       c.Metadata.AggregateRating.RatingValue,
		Pricing:      string(c.Service.Pricing),
		Status:       string(c.Service.Status),
		Badges:       badgeLabels(c.VisibleBadges),
		Blurred:      c.Blurred,
		PaymentGuide: c.ShowPaymentGuide,
		URL:          c.Metadata.URL,
	}
}

func badgeLabels(badges []badge.Type) []string {
	labels := make([]string, 0, len(badges))
	for _, b := range badges {
		info := badge.Lookup(b)
		if info.Icon != "" {
			labels = append(labels, info.Icon+" "+info.Label)
			continue
		}
		labels = append(labels, info.Label)
	}
	return labels
}

func (a *app) listCmd() *cobra.Command {
	var (
		asJSON bool
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "list [group=token[,token]...] [dead]",
		Short: "List services matching the filter",
		Example: "  catalog list meaning=nsfw payment=mir\n" +
			"  catalog list platform=telegram features=memory,no-vpn dead",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := filter.ParseState(args)
			if err != nil {
				return err
			}
			if strict || a.cfg.StrictFilters {
				if unknown := filter.Unknown(state); len(unknown) > 0 {
					return fmt.Errorf("unknown filter token %s=%s", unknown[0].Group, unknown[0].Token)
				}
			}

			cat, closeStore, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()
			cards := cat.Cards(state)

			if asJSON {
				views := make([]cardView, 0, len(cards))
				for _, c := range cards {
					views = append(views, newCardView(c))
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SLUG\tNAME\tRATING\tPRICING\tBADGES")
			for _, c := range cards {
				v := newCardView(c)
				name := v.Name
				if c.Inactive {
					name += " (" + v.Status + ")"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.Slug, name, v.Rating, v.Pricing, strings.Join(v.Badges, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print cards as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject unknown filter tokens")
	return cmd
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <slug>",
		Short: "Show one service card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closeStore, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()
			svc, ok := cat.Find(args[0])
			if !ok {
				return fmt.Errorf("service %q not found", args[0])
			}
			printCard(cmd.OutOrStdout(), cat.Card(&svc))
			if cat.SafeMode().Saved(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), "safe mode: on")
			}
			return nil
		},
	}
}

func printCard(w io.Writer, c catalog.Card) {
	v := newCardView(c)
	svc := c.Service
	fmt.Fprintf(w, "%s (%s)\n", v.Name, v.Slug)
	fmt.Fprintf(w, "  rating:    %s\n", v.Rating)
	fmt.Fprintf(w, "  pricing:   %s, from %s %s\n", v.Pricing, c.Metadata.Offers.Price, c.Metadata.Offers.PriceCurrency)
	fmt.Fprintf(w, "  status:    %s\n", v.Status)
	if svc.DeadReason != "" {
		fmt.Fprintf(w, "  reason:    %s\n", svc.DeadReason)
	}
	fmt.Fprintf(w, "  platforms: %s\n", joinStrings(svc.Platforms))
	fmt.Fprintf(w, "  payment:   %s\n", joinStrings(svc.PaymentMethods))
	fmt.Fprintf(w, "  badges:    %s\n", strings.Join(v.Badges, ", "))
	if c.Blurred {
		fmt.Fprintln(w, "  preview:   hidden (safe mode)")
	}
	if c.ShowPaymentGuide {
		fmt.Fprintln(w, "  guide:     payment guide available")
	}
	fmt.Fprintf(w, "  page:      %s\n", v.URL)
	fmt.Fprintf(w, "  site:      %s\n", svc.AffiliateURL)
	fmt.Fprintf(w, "\n%s\n", c.Metadata.Description)
}

func joinStrings[T ~string](values []T) string {
	if len(values) == 0 {
		return "-"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func (a *app) jsonldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jsonld <slug>",
		Short: "Print the Schema.org Product JSON-LD of a service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, closeStore, err := a.openCatalog(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()
			svc, ok := cat.Find(args[0])
			if !ok {
				return fmt.Errorf("service %q not found", args[0])
			}
			data, err := seo.JSONLD(seo.Project(&svc, cat.PageURL(svc.Slug)))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func (a *app) safeModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "safe-mode [on|off|reset]",
		Short:     "Show or change the persisted safe mode flag",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off", "reset"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := a.openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(args) == 1 {
				switch args[0] {
				case "on", "off":
					gate := safemode.New(ctx, store, a.log)
					if err := gate.Toggle(ctx, args[0] == "on"); err != nil {
						return fmt.Errorf("save safe mode: %w", err)
					}
				case "reset":
					if err := store.Delete(ctx, safemode.StorageKey); err != nil {
						return fmt.Errorf("reset safe mode: %w", err)
					}
				default:
					return fmt.Errorf("invalid argument %q, use on, off or reset", args[0])
				}
			}

			state := "off"
			if safemode.New(ctx, store, a.log).IsEnabled() {
				state = "on"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "safe mode: %s\n", state)
			return nil
		},
	}
}

func (a *app) openStore() (*storage.SQLite, error) {
	if dir := filepath.Dir(a.cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	store, err := storage.NewSQLite(a.cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return store, nil
}

// openCatalog loads and validates the catalog. Safe mode is restored from the
// preference database, which stays open until the returned close func runs.
// When it cannot be opened the catalog renders with safe mode off.
func (a *app) openCatalog(ctx context.Context) (*catalog.Catalog, func(), error) {
	services, err := schema.LoadServices(a.cfg.CatalogDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	var gate *safemode.Gate
	closeStore := func() {}
	store, err := a.openStore()
	if err != nil {
		a.log.Warn("preferences unavailable, safe mode off", "error", err)
	} else {
		gate = safemode.New(ctx, store, a.log)
		closeStore = func() { _ = store.Close() }
	}
	return catalog.New(services, gate, a.cfg.SiteURL, a.log), closeStore, nil
}
