package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/harmonixfi/harmonix-api/pkg/app/http"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the read endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Get("/rewards/restaking/{wallet_address}", apphttp.HandleError(h.listRestakingRewards))
	r.Get("/goldlink/accounts/{account_address}/holdings", apphttp.HandleError(h.getGoldLinkHoldings))
}

// RegisterIngestRoutes registers the write endpoints.
// Callers are expected to wrap r with authentication.
func RegisterIngestRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Post("/rewards/restaking", apphttp.HandleError(h.recordRestakingRewards))
	r.Put("/goldlink/accounts/{account_address}/holdings", apphttp.HandleError(h.upsertGoldLinkHoldings))
}

func (h *HTTP) listRestakingRewards(w http.ResponseWriter, r *http.Request) error {
	out, err := h.service.ListRestakingRewards(r.Context(), chi.URLParam(r, "wallet_address"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, out)
	return nil
}

func (h *HTTP) recordRestakingRewards(w http.ResponseWriter, r *http.Request) error {
	var rec schema.EarnedRestakingRewards
	if err := apphttp.DecodeBody(r, &rec); err != nil {
		return err
	}

	out, err := h.service.RecordRestakingRewards(r.Context(), &rec)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, out)
	return nil
}

func (h *HTTP) getGoldLinkHoldings(w http.ResponseWriter, r *http.Request) error {
	out, err := h.service.GetGoldLinkHoldings(r.Context(), chi.URLParam(r, "account_address"))
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, out)
	return nil
}

func (h *HTTP) upsertGoldLinkHoldings(w http.ResponseWriter, r *http.Request) error {
	var rec schema.GoldLinkAccountHoldings
	if err := apphttp.DecodeBody(r, &rec); err != nil {
		return err
	}

	out, err := h.service.UpsertGoldLinkHoldings(r.Context(), chi.URLParam(r, "account_address"), &rec)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, out)
	return nil
}
