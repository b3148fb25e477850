package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"restaurant-pos/report-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Reports service.ReportInterface
}

func NewHandler(reports service.ReportInterface) *Handler {
	return &Handler{Reports: reports}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/reports/summary", h.summary).Methods("GET")
	r.HandleFunc("/api/reports/top-items", h.topItems).Methods("GET")
	r.HandleFunc("/api/reports/by-category", h.byCategory).Methods("GET")
	r.HandleFunc("/api/reports/hourly", h.hourly).Methods("GET")
	r.HandleFunc("/api/reports/export", h.export).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "report-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Reports.Summary(r.URL.Query().Get("period"))
	if err != nil {
		h.reportError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"summary":       summary,
		"average_order": summary.AverageOrder(),
	})
}

func (h *Handler) topItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := h.Reports.TopItems(r.URL.Query().Get("period"), limit)
	if err != nil {
		h.reportError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"items": items})
}

func (h *Handler) byCategory(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Reports.ByCategory(r.URL.Query().Get("period"))
	if err != nil {
		h.reportError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"categories": categories})
}

func (h *Handler) hourly(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if raw := r.URL.Query().Get("day"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "day must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	hours, err := h.Reports.Hourly(day)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"hours": hours})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.ExportText(r.URL.Query().Get("period"))
	if err != nil {
		h.reportError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=sales-report.txt")
	w.Write([]byte(report))
}

func (h *Handler) reportError(w http.ResponseWriter, err error) {
	if err == service.ErrUnknownPeriod {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
