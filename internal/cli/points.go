package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/export"
	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/merchant-dashboard/internal/app/listview"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/view"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

func newPointsCommand(d Deps, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points",
		Short: "List points distributed or redeemed",
	}
	for _, kind := range []points.Kind{points.KindDistributed, points.KindRedeemed} {
		cmd.AddCommand(newPointsListCommand(d, opts, kind))
	}
	return cmd
}

func newPointsListCommand(d Deps, opts *rootOptions, kind points.Kind) *cobra.Command {
	flags := &listFlags{}
	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: "List " + strings.ToLower(kind.Title()),
		Example: fmt.Sprintf("  dashctl points %s --preset last-month --search TX-10\n"+
			"  dashctl points %s --from 2024-06-01 --to 2024-06-30 -o json", kind, kind),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.commandContext(cmd)
			defer cancel()
			return runPointsList(ctx, d, kind, flags, opts.renderer(cmd))
		},
	}
	flags.register(cmd)
	return cmd
}

func runPointsList(ctx context.Context, d Deps, kind points.Kind, flags *listFlags, r *renderer) error {
	initial, err := flags.actions()
	if err != nil {
		return err
	}

	v, err := openView(ctx, d, kind, initial)
	if err != nil {
		return err
	}
	defer v.Close()

	meta, err := v.Await(ctx)
	if err != nil {
		return fmt.Errorf("waiting for %s: %w", kind, err)
	}
	if meta.Status == view.StatusErrored {
		return fmt.Errorf("fetching %s: %w", kind, meta.Err)
	}
	if !meta.ShouldFetch {
		r.warn("The custom range is incomplete or ends before it starts; nothing was fetched.")
	}

	rows := v.Rows()
	table, err := export.TableFor(rows)
	if err != nil {
		return err
	}
	if flags.xlsx != "" {
		if err := writeWorkbook(flags.xlsx, table); err != nil {
			return err
		}
		r.warn("Wrote %s", flags.xlsx)
	}

	if r.structured() {
		return r.document(newListDocument(kind, meta, rows))
	}

	r.table(table.Headers, table.Strings())
	from, to := meta.Range.ISO()
	pages := max(meta.Pagination.TotalPages, 1)
	r.info("%s, %s to %s: page %d of %d, %d results",
		kind.Title(), from, to, meta.State.Page+1, pages, meta.Pagination.TotalElements)
	return nil
}

// openView starts a list view of kind against the merchant API.
func openView(ctx context.Context, d Deps, kind points.Kind, initial []query.Action) (ports.ListView, error) {
	opts := listview.Options{
		Name:        kind.String(),
		PageSize:    d.Settings.PageSize,
		SearchDelay: d.Settings.SearchDelay,
		Resolver:    daterange.NewResolver(d.Settings.WeekStart),
		Logger:      d.Logger,
		Initial:     initial,
	}

	switch kind {
	case points.KindDistributed:
		v, err := listview.New(ctx, listview.FetchFunc[points.Distribution](d.Client.ListDistributions), opts)
		if err != nil {
			return nil, err
		}
		return v, nil
	case points.KindRedeemed:
		v, err := listview.New(ctx, listview.FetchFunc[points.Redemption](d.Client.ListRedemptions), opts)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown list %q", kind)
	}
}

func writeWorkbook(path string, t export.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.WriteXLSX(f, t); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// listDocument is the json and yaml form of a settled list.
type listDocument struct {
	Kind        string                 `json:"kind"`
	Title       string                 `json:"title"`
	Status      string                 `json:"status"`
	ShouldFetch bool                   `json:"shouldFetch"`
	State       dto.QueryStateResponse `json:"state"`
	Range       dto.RangeResponse      `json:"range"`
	Params      string                 `json:"params,omitempty"`
	Pagination  dto.PaginationResponse `json:"pagination"`
	Rows        any                    `json:"rows"`
}

func newListDocument(kind points.Kind, meta view.Meta, rows any) listDocument {
	doc := listDocument{
		Kind:        kind.String(),
		Title:       kind.Title(),
		Status:      meta.Status.String(),
		ShouldFetch: meta.ShouldFetch,
		State:       dto.NewQueryStateResponse(meta.State),
		Range:       dto.NewRangeResponse(meta.Range),
		Pagination:  dto.NewPaginationResponse(meta.Pagination, meta.State.Page),
		Rows:        dto.NewRowsResponse(rows),
	}
	if meta.Params != (query.Params{}) {
		doc.Params = meta.Params.Encode()
	}
	return doc
}
