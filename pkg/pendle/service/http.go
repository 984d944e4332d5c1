package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/harmonixfi/harmonix-api/pkg/app/errors"
	apphttp "github.com/harmonixfi/harmonix-api/pkg/app/http"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the market read endpoint on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Get("/pendle/markets", apphttp.HandleError(h.listMarkets))
}

// RegisterIngestRoutes registers the on-demand sync trigger.
// Callers are expected to wrap r with authentication.
func RegisterIngestRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Post("/pendle/markets/sync", apphttp.HandleError(h.sync))
}

func (h *HTTP) listMarkets(w http.ResponseWriter, r *http.Request) error {
	var chainID *int64
	if raw := r.URL.Query().Get("chain_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return apperrors.BadRequestError(err, "chain_id must be a positive integer")
		}
		chainID = &id
	}

	out, err := h.service.ListMarkets(r.Context(), chainID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, out)
	return nil
}

func (h *HTTP) sync(w http.ResponseWriter, r *http.Request) error {
	if err := h.service.Sync(r.Context()); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
