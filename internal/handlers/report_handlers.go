package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Werneck0live/office-admin/internal/presenter"
	"github.com/Werneck0live/office-admin/internal/report"
	"github.com/Werneck0live/office-admin/internal/utils"
)

type ReportRunner interface {
	Run(ctx context.Context, name string, day time.Time) (any, error)
	Location() *time.Location
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	Engine  ReportRunner
	Timeout time.Duration
	Log     *slog.Logger
}

func NewReportHandler(engine ReportRunner, timeout time.Duration) *ReportHandler {
	return &ReportHandler{Engine: engine, Timeout: timeout, Log: slog.Default().With("cmp", "handlers.reports")}
}

// Report atende GET /api/reports/{name}?date=YYYY-MM-DD&format=json|xlsx
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	name, ok := parseIDFromPath(r.URL.Path, "reports")
	if !ok {
		utils.NotFound(w)
		return
	}

	q := r.URL.Query()
	var day time.Time
	if name == report.NameDailyEntries {
		d, err := report.ParseDay(q.Get("date"), h.Engine.Location())
		if err != nil {
			utils.BadRequest(w, "date must be YYYY-MM-DD")
			return
		}
		day = d
	}

	ctx := r.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	result, err := h.Engine.Run(ctx, name, day)
	if err != nil {
		if errors.Is(err, report.ErrUnknownReport) {
			utils.NotFound(w)
			return
		}
		h.logger().Error("report_error", "report", name, "err", err)
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	switch q.Get("format") {
	case "", "json":
		utils.WriteJSON(w, http.StatusOK, result)
	case "xlsx":
		data, err := presenter.WriteXLSX(result, h.Engine.Location())
		if err != nil {
			h.logger().Error("report_xlsx_error", "report", name, "err", err)
			utils.WriteError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, name))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	default:
		utils.BadRequest(w, "format must be json or xlsx")
	}
}

func (h *ReportHandler) logger() *slog.Logger {
	if h.Log == nil {
		return slog.Default()
	}
	return h.Log
}
