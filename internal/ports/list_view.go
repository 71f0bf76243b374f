package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/view"
)

// ListView is a live paginated list, independent of its row type.
// Implemented by the application layer's list view.
type ListView interface {
	// Name returns the view label, the list kind for dashboard views.
	Name() string

	// Dispatch applies one query action. Invalid actions return a
	// domain.ValidationError and leave the view untouched.
	Dispatch(a query.Action) error

	// Refresh refetches the current parameters.
	Refresh() error

	// Meta returns the current metadata.
	Meta() view.Meta

	// Rows returns a copy of the current rows; the dynamic type is []T.
	Rows() any

	// Watch returns the metadata and a channel closed on the next change.
	Watch() (view.Meta, <-chan struct{})

	// Await blocks until the view is not loading.
	Await(ctx context.Context) (view.Meta, error)

	// LastActive returns when the view was last used.
	LastActive() time.Time

	// Close releases the view. It is idempotent.
	Close()
}

// OpenViewRequest describes a view to open. Zero fields take the
// configured defaults.
type OpenViewRequest struct {
	Kind        points.Kind
	PageSize    int
	Preset      daterange.Preset
	Start       *time.Time
	End         *time.Time
	SearchField query.SearchField
}

// ViewInfo identifies an open view.
type ViewInfo struct {
	ID        string
	Kind      points.Kind
	CreatedAt time.Time
}

// ViewService defines the service port for the set of open list views.
// Implemented by the application layer; called by inbound adapters.
type ViewService interface {
	// Open creates a view and starts its first fetch.
	// Returns domain.ErrValidation for a bad request and
	// domain.ErrUnavailable when the open view limit is reached.
	Open(ctx context.Context, req OpenViewRequest) (ViewInfo, ListView, error)

	// Get returns an open view. Returns domain.ErrNotFound if there is none.
	Get(id string) (ViewInfo, ListView, error)

	// List returns the open views, oldest first.
	List() []ViewInfo

	// Close closes and forgets a view.
	// Returns domain.ErrNotFound if there is none.
	Close(id string) error

	// Sweep closes views idle since before now minus the idle TTL and
	// returns how many it closed.
	Sweep(now time.Time) int

	// CloseAll closes every view.
	CloseAll()
}
