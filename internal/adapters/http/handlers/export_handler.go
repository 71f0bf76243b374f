package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/export"
	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/logging"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

// ExportHandler downloads the current page of a view as a workbook.
type ExportHandler struct {
	views ports.ViewService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(views ports.ViewService) *ExportHandler {
	return &ExportHandler{views: views}
}

// ExportView handles GET /api/v1/views/{id}/export.
func (h *ExportHandler) ExportView(w http.ResponseWriter, r *http.Request) {
	info, v, ok := lookupView(w, r, h.views)
	if !ok {
		return
	}
	meta := v.Meta()

	table, err := export.TableFor(v.Rows())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	f, err := export.Workbook(table)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	defer func() { _ = f.Close() }()

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(info.Kind, meta.Range.Range)+`"`)
	if err := f.Write(w); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to write export",
			slog.String("view_id", info.ID),
			slog.Any("error", err),
		)
	}
}
