package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/halcyon-ops/hourglass/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

// Handler serves the report endpoints.
type Handler struct {
	uc  *UseCases
	now func() time.Time
}

// NewHandler creates a Handler. The clock is injectable for tests.
func NewHandler(uc *UseCases, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{uc: uc, now: now}
}

// parseDateRange reads and validates required startDate/endDate query
// parameters. Missing or malformed values are client errors, never silently
// defaulted.
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	rawStart := r.URL.Query().Get("startDate")
	rawEnd := r.URL.Query().Get("endDate")
	if rawStart == "" || rawEnd == "" {
		return time.Time{}, time.Time{}, goerr.Wrap(model.ErrInvalidDateRange,
			"startDate and endDate are required")
	}

	start, err := time.Parse(model.DateFormat, rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, goerr.Wrap(model.ErrInvalidDateRange,
			"startDate must be YYYY-MM-DD", goerr.V("startDate", rawStart))
	}
	end, err := time.Parse(model.DateFormat, rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, goerr.Wrap(model.ErrInvalidDateRange,
			"endDate must be YYYY-MM-DD", goerr.V("endDate", rawEnd))
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, goerr.Wrap(model.ErrInvalidDateRange,
			"endDate must not be before startDate")
	}
	return start, end, nil
}

// resolveRange reads optional startDate/endDate, falling back to the named
// period preset when dates are absent (dashboard and ticket views).
func (h *Handler) resolveRange(r *http.Request) (model.ReportRange, error) {
	q := r.URL.Query()
	if q.Get("startDate") == "" && q.Get("endDate") == "" {
		return model.RangeForPeriod(q.Get("period"), h.now()), nil
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		return model.ReportRange{}, err
	}
	return model.ReportRange{StartDate: start, EndDate: end, Label: "Custom Range"}, nil
}

// HandleOvertimeSummary serves GET /overtime-summary.
func (h *Handler) HandleOvertimeSummary(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	summary, err := h.uc.Reports.BuildOvertimeSummary(r.Context(), start, end)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"success":      true,
		"overtimeData": summary.Totals,
		"anomalies":    summary.Anomalies,
	})
}

// HandleHoursGrid serves GET /hours-grid.
func (h *Handler) HandleHoursGrid(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseDateRange(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	grid, err := h.uc.Reports.BuildHoursGrid(r.Context(), start, end)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"success":           true,
		"hoursByTechnician": grid.Hours,
		"technicians":       grid.Technicians,
		"dates":             grid.Dates,
	})
}

// HandleCurrentOvertime serves GET /api/overtime/hours: the overtime summary
// for the automatic pay period containing today.
func (h *Handler) HandleCurrentOvertime(w http.ResponseWriter, r *http.Request) {
	period, summary, err := h.uc.Reports.CurrentOvertime(r.Context(), h.now())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"success":      true,
		"overtimeData": summary.Totals,
		"anomalies":    summary.Anomalies,
		"period": map[string]string{
			"startDate": period.StartDate.Format(model.DateFormat),
			"endDate":   period.EndDate.Format(model.DateFormat),
			"label":     period.Label,
		},
	})
}

// HandlePeriods serves GET /api/overtime/periods: the selectable pay periods.
func (h *Handler) HandlePeriods(w http.ResponseWriter, r *http.Request) {
	window := usecase.DefaultPeriodWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(r.Context(), w, goerr.Wrap(model.ErrInvalidDateRange,
				"window must be a positive integer", goerr.V("window", raw)))
			return
		}
		window = n
	}

	nav := usecase.NewPeriodNavigator(window)
	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"success": true,
		"periods": nav.ListAvailablePeriods(h.now()),
	})
}

// HandleOpenTickets serves GET /api/tickets/open.
func (h *Handler) HandleOpenTickets(w http.ResponseWriter, r *http.Request) {
	rng, err := h.resolveRange(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	tickets, err := h.uc.Tickets.CreatedInRange(r.Context(), rng)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"success": true,
		"total":   len(tickets),
		"tickets": tickets,
		"period":  rng,
	})
}

// HandleClosedTickets serves GET /api/tickets/closed.
func (h *Handler) HandleClosedTickets(w http.ResponseWriter, r *http.Request) {
	rng, err := h.resolveRange(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	tickets, err := h.uc.Tickets.ClosedInRange(r.Context(), rng)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	type closedTicket struct {
		model.Ticket
		ResolutionHours int `json:"resolutionTime"`
	}
	out := make([]closedTicket, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, closedTicket{Ticket: t, ResolutionHours: t.ResolutionHours()})
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"success": true,
		"total":   len(out),
		"tickets": out,
	})
}

// HandleDashboardStats serves GET /api/dashboard/stats.
func (h *Handler) HandleDashboardStats(w http.ResponseWriter, r *http.Request) {
	rng, err := h.resolveRange(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	stats, err := h.uc.Dashboard.Stats(r.Context(), rng)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, stats)
}

// HandleWeeklyActivity serves GET /api/dashboard/weekly-activity.
func (h *Handler) HandleWeeklyActivity(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.uc.Dashboard.WeeklyActivity(r.Context(), r.URL.Query().Get("period"), h.now())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"success":    true,
		"weeklyData": buckets,
	})
}

// HandleTopClients serves GET /api/dashboard/top-clients.
func (h *Handler) HandleTopClients(w http.ResponseWriter, r *http.Request) {
	rng, err := h.resolveRange(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	shares, total, err := h.uc.Dashboard.TopClients(r.Context(), rng)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"success":        true,
		"topClientsData": shares,
		"totalTickets":   total,
	})
}

// HandleClients serves GET /api/clients.
func (h *Handler) HandleClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.uc.ClientReports.ListClients(r.Context())
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"success": true,
		"clients": clients,
	})
}

// HandleClientHours serves GET /api/reports/client-hours with optional CSV
// export via format=csv.
func (h *Handler) HandleClientHours(w http.ResponseWriter, r *http.Request) {
	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		writeError(r.Context(), w, goerr.Wrap(model.ErrInvalidDateRange, "clientId is required"))
		return
	}

	start, end, err := parseDateRange(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	report, err := h.uc.ClientReports.BuildClientHours(r.Context(), types.ClientID(clientID), start, end)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		filename := fmt.Sprintf("client-hours-%s-%s.csv", clientID, start.Format(model.DateFormat))
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename="+filename)
		if err := h.uc.ClientReports.WriteCSV(w, report); err != nil {
			writeError(r.Context(), w, err)
		}
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, report)
}

// handleHealth serves GET /health.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "hourglass",
	})
}
