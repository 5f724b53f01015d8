// internal/handler/history_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/marketmind/marketmind-backend/internal/service"
)

// HistoryHandler serves the dashboard read side: paginated generation history
// and the analytics summary.
type HistoryHandler struct {
	Campaigns *service.CampaignService
	Pitches   *service.PitchService
	Leads     *service.LeadService
	Analytics *service.AnalyticsService
	Logger    *zap.Logger
}

func (h *HistoryHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)

	campaigns, pagination, err := h.Campaigns.List(r.Context(), page, pageSize)
	if err != nil {
		h.Logger.Error("failed to list campaigns", zap.Error(err))
		http.Error(w, "failed to fetch campaigns: "+err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, map[string]interface{}{
		"data":       campaigns,
		"pagination": pagination,
	})
}

func (h *HistoryHandler) ListPitches(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)

	pitches, pagination, err := h.Pitches.List(r.Context(), page, pageSize)
	if err != nil {
		h.Logger.Error("failed to list pitches", zap.Error(err))
		http.Error(w, "failed to fetch pitches: "+err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, map[string]interface{}{
		"data":       pitches,
		"pagination": pagination,
	})
}

func (h *HistoryHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pageParams(r)

	leads, pagination, err := h.Leads.List(r.Context(), page, pageSize)
	if err != nil {
		h.Logger.Error("failed to list leads", zap.Error(err))
		http.Error(w, "failed to fetch leads: "+err.Error(), http.StatusInternalServerError)
		return
	}

	respond(w, map[string]interface{}{
		"data":       leads,
		"pagination": pagination,
	})
}

// Summary returns the KPI numbers for the dashboard cards.
func (h *HistoryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Analytics.Summary(r.Context())
	if err != nil {
		h.Logger.Error("failed to build analytics summary", zap.Error(err))
		http.Error(w, "failed to fetch summary: "+err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, summary)
}

func (h *HistoryHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	respond(w, map[string]string{"status": "ok"})
}

func pageParams(r *http.Request) (int, int) {
	page := 1
	pageSize := 20

	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && ps > 0 {
		pageSize = ps
	}
	return page, pageSize
}

func respond(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
