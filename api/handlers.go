/*
handlers.go - HTTP handlers for the worktime API

PURPOSE:
  Implements the HTTP endpoints. Handlers follow a consistent pattern:
  1. Parse/validate input
  2. Load entries and settings from the store
  3. Call accounting functions
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown user or entry
  - 500: Store failures

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/robert-northmind/worktime/accounting"
	"github.com/robert-northmind/worktime/store"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store  store.Store
	Logger *zap.Logger
}

// NewHandler creates a new handler with the given store.
func NewHandler(st store.Store, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Store: st, Logger: logger}
}

// =============================================================================
// SETTINGS
// =============================================================================

// GetSettings returns the user's settings document.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	user, err := h.Store.GetUser(r.Context(), uid)
	if err != nil {
		h.serverError(w, "Failed to load settings", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, SettingsDTO{UID: user.UID, Settings: user.Settings})
}

// SaveSettings replaces the user's settings document wholesale.
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var settings store.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.Store.SaveUser(r.Context(), store.UserDocument{UID: uid, Settings: settings}); err != nil {
		h.serverError(w, "Failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, SettingsDTO{UID: uid, Settings: settings})
}

// =============================================================================
// ENTRIES
// =============================================================================

// GetEntries returns the user's entries in the from/to range (inclusive).
func (h *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	from, err := accounting.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid from date (use YYYY-MM-DD)", err)
		return
	}
	to, err := accounting.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid to date (use YYYY-MM-DD)", err)
		return
	}

	entries, err := h.Store.GetEntries(r.Context(), uid, from, to)
	if err != nil {
		h.serverError(w, "Failed to load entries", err)
		return
	}
	if entries == nil {
		entries = []accounting.DailyEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// SaveEntry upserts the entry at the path date. The path is canonical; a
// differing date in the body is rejected.
func (h *Handler) SaveEntry(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	date, err := accounting.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}

	var entry accounting.DailyEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if !entry.Date.IsZero() && !entry.Date.Equal(date) {
		writeError(w, http.StatusBadRequest, "Entry date does not match URL", nil)
		return
	}
	entry.Date = date

	if err := h.Store.SaveEntry(r.Context(), uid, entry); err != nil {
		h.serverError(w, "Failed to save entry", err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// DeleteEntry removes the entry at the path date.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	date, err := accounting.ParseDate(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}

	if err := h.Store.DeleteEntry(r.Context(), uid, date); err != nil {
		h.serverError(w, "Failed to delete entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BatchSaveEntries upserts a batch of entries atomically.
func (h *Handler) BatchSaveEntries(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var req BatchSaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	for _, entry := range req.Entries {
		if entry.Date.IsZero() {
			writeError(w, http.StatusBadRequest, "Every entry needs a date", nil)
			return
		}
	}

	if err := h.Store.BatchSaveEntries(r.Context(), uid, req.Entries); err != nil {
		h.serverError(w, "Failed to save entries", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"saved": len(req.Entries)})
}

// BatchDeleteEntries removes a batch of entries atomically.
func (h *Handler) BatchDeleteEntries(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var req BatchDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.Store.BatchDeleteEntries(r.Context(), uid, req.Dates); err != nil {
		h.serverError(w, "Failed to delete entries", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": len(req.Dates)})
}

// =============================================================================
// REPORTS
// =============================================================================

// GetYearReport returns the yearly balance, weekly average, weekday stats,
// and sick-day count for a calendar year.
func (h *Handler) GetYearReport(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	today, err := todayParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid today date (use YYYY-MM-DD)", err)
		return
	}

	user, entries, ok := h.loadUserYear(w, r, uid, year)
	if !ok {
		return
	}
	schedules := user.Settings.Schedules

	writeJSON(w, http.StatusOK, YearReportDTO{
		Year:           year,
		Balance:        accounting.CalculateYearlyBalance(entries, schedules, today),
		AverageWeekly:  accounting.CalculateAverageWeeklyHours(entries, schedules, accounting.ExpectedWeeklyHours(today, schedules), today),
		DayOfWeekStats: accounting.CalculateDayOfWeekStats(entries, schedules, today),
		SickDays:       accounting.CountSickDays(entries),
		EntryCount:     len(entries),
	})
}

// GetWeeksReport returns a year's entries grouped into ISO weeks with
// filled day slots, newest week first.
func (h *Handler) GetWeeksReport(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	today, err := todayParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid today date (use YYYY-MM-DD)", err)
		return
	}
	year := today.Year()
	if y := r.URL.Query().Get("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
	}

	user, entries, ok := h.loadUserYear(w, r, uid, year)
	if !ok {
		return
	}
	schedules := user.Settings.Schedules

	byWeek := make(map[string][]accounting.DailyEntry)
	for _, entry := range entries {
		key := accounting.WeekKey(entry.Date)
		byWeek[key] = append(byWeek[key], entry)
	}

	weeks := make([]WeekDTO, 0, len(byWeek))
	for key, weekEntries := range byWeek {
		days := accounting.FillWeekDays(weekEntries, key, today)
		dtos := make([]WeekDayDTO, len(days))
		for i, day := range days {
			dto := WeekDayDTO{Date: day.Date.String(), Entry: day.Entry}
			if day.Entry != nil {
				balance := accounting.CalculateDailyBalance(*day.Entry, schedules)
				dto.Balance = &balance
			}
			dtos[i] = dto
		}
		weeks = append(weeks, WeekDTO{WeekKey: key, Days: dtos})
	}

	// Newest week first; week keys are not lexically ordered, so compare
	// the recomputed Mondays.
	sort.Slice(weeks, func(i, j int) bool {
		return weekMonday(weeks[i].WeekKey).After(weekMonday(weeks[j].WeekKey))
	})

	writeJSON(w, http.StatusOK, WeeksReportDTO{Year: year, Weeks: weeks})
}

// GetVacationReport returns the vacation position in the active vacation
// year.
func (h *Handler) GetVacationReport(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	today, err := todayParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid today date (use YYYY-MM-DD)", err)
		return
	}

	user, ok := h.requireUser(w, r, uid)
	if !ok {
		return
	}

	start, end := accounting.VacationYear(user.Settings.Vacation, today)
	entries, err := h.Store.GetEntries(r.Context(), uid, start, end.AddDays(-1))
	if err != nil {
		h.serverError(w, "Failed to load entries", err)
		return
	}

	writeJSON(w, http.StatusOK, accounting.CalculateVacationStats(entries, user.Settings.Vacation, today))
}

// GetMilestonesReport returns the selected year's upcoming milestones and
// the one chosen for display.
func (h *Handler) GetMilestonesReport(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	today, err := todayParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid today date (use YYYY-MM-DD)", err)
		return
	}
	year := today.Year()
	if y := r.URL.Query().Get("year"); y != "" {
		year, err = strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
	}

	user, ok := h.requireUser(w, r, uid)
	if !ok {
		return
	}

	relevant := accounting.CollectRelevantMilestones(user.Settings.YearlyMilestones, year, today)
	sorted := accounting.SortMilestonesByDate(relevant)
	if sorted == nil {
		sorted = []accounting.Milestone{}
	}

	writeJSON(w, http.StatusOK, MilestonesReportDTO{
		Year:       year,
		Milestones: sorted,
		Next:       accounting.NextMilestoneDisplay(relevant, today),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

// requireUser loads the user document, writing the error response itself
// when the user is missing or the store fails.
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request, uid string) (*store.UserDocument, bool) {
	user, err := h.Store.GetUser(r.Context(), uid)
	if err != nil {
		h.serverError(w, "Failed to load user", err)
		return nil, false
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found", store.ErrUserNotFound)
		return nil, false
	}
	return user, true
}

// loadUserYear loads the user plus their entries for a calendar year.
func (h *Handler) loadUserYear(w http.ResponseWriter, r *http.Request, uid string, year int) (*store.UserDocument, []accounting.DailyEntry, bool) {
	user, ok := h.requireUser(w, r, uid)
	if !ok {
		return nil, nil, false
	}

	from := accounting.NewDate(year, time.January, 1)
	to := accounting.NewDate(year, time.December, 31)
	entries, err := h.Store.GetEntries(r.Context(), uid, from, to)
	if err != nil {
		h.serverError(w, "Failed to load entries", err)
		return nil, nil, false
	}
	return user, entries, true
}

// todayParam resolves the reference date: ?today= when present, otherwise
// the server's current date. This is the only place the clock is read.
func todayParam(r *http.Request) (accounting.CalendarDate, error) {
	if s := r.URL.Query().Get("today"); s != "" {
		return accounting.ParseDate(s)
	}
	return accounting.DateOf(time.Now()), nil
}

func weekMonday(key string) accounting.CalendarDate {
	year, week, ok := accounting.ParseWeekKey(key)
	if !ok {
		return accounting.CalendarDate{}
	}
	return accounting.WeekStart(year, week)
}

func (h *Handler) serverError(w http.ResponseWriter, message string, err error) {
	h.Logger.Error(message, zap.Error(err))
	writeError(w, http.StatusInternalServerError, message, err)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
