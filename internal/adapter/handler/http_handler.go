package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rl1809/cafeteria/internal/core/domain"
)

type StockReader interface {
	Snapshot() domain.StockSnapshot
}

// HTTPHandler exposes the stock read-only; mutations only go through the facade.
type HTTPHandler struct {
	stock StockReader
}

type StockHTTPResponse struct {
	Label   string   `json:"label"`
	Items   []string `json:"items"`
	Count   int      `json:"count"`
	Display string   `json:"display"`
}

func NewHTTPHandler(stock StockReader) *HTTPHandler {
	return &HTTPHandler{stock: stock}
}

func (h *HTTPHandler) Stock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := h.stock.Snapshot()
	writeJSON(w, http.StatusOK, StockHTTPResponse{
		Label:   snap.Label,
		Items:   snap.Items,
		Count:   len(snap.Items),
		Display: "Almacén de " + snap.Label + ": " + domain.FormatItems(snap.Items),
	})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("write json response")
	}
}
