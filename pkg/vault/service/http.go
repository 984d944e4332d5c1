package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/harmonixfi/harmonix-api/pkg/app/errors"
	apphttp "github.com/harmonixfi/harmonix-api/pkg/app/http"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
	"github.com/harmonixfi/harmonix-api/pkg/vault"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the read endpoints for vaults on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Get("/vaults/{vault_id}/price-per-share-histories", apphttp.HandleError(h.listPricePerShareHistories))
	r.Get("/vaults/{vault_id}/user-asset-amounts", apphttp.HandleError(h.listUserAssetAmounts))
	r.Get("/vaults/{vault_id}/points", apphttp.HandleError(h.listPoints))
}

// RegisterIngestRoutes registers the write endpoints used by indexing jobs.
// Callers are expected to wrap r with authentication.
func RegisterIngestRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{service: service, logger: logger}

	r.Post("/vaults/{vault_id}/price-per-share-histories", apphttp.HandleError(h.recordPricePerShare))
	r.Put("/vaults/{vault_id}/user-asset-amounts", apphttp.HandleError(h.upsertUserAssetAmount))
	r.Put("/vaults/{vault_id}/points", apphttp.HandleError(h.upsertPoints))
}

func vaultIDParam(r *http.Request) (uuid.UUID, error) {
	vaultID, err := uuid.Parse(chi.URLParam(r, "vault_id"))
	if err != nil {
		return uuid.Nil, apperrors.BadRequestError(err, "vault_id must be a UUID")
	}
	return vaultID, nil
}

func parseHistoryQuery(r *http.Request) (vault.HistoryQuery, error) {
	var q vault.HistoryQuery
	values := r.URL.Query()

	for _, p := range []struct {
		key  string
		dest **time.Time
	}{{"from", &q.From}, {"to", &q.To}} {
		raw := values.Get(p.key)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return q, apperrors.BadRequestError(err, p.key+" must be an RFC3339 timestamp")
		}
		*p.dest = &t
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return q, apperrors.BadRequestError(err, "limit must be a positive integer")
		}
		q.Limit = limit
	}

	return q, nil
}

func (h *HTTP) listPricePerShareHistories(w http.ResponseWriter, r *http.Request) error {
	vaultID, err := vaultIDParam(r)
	if err != nil {
		return err
	}
	q, err := parseHistoryQuery(r)
	if err != nil {
		return err
	}

	out, err := h.service.ListPricePerShareHistories(r.Context(), vaultID, q)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, out)
	return nil
}

func (h *HTTP) recordPricePerShare(w http.ResponseWriter, r *http.Request) error {
	vaultID, err := vaultIDParam(r)
	if err != nil {
		return err
	}
	var rec schema.PricePerShareHistoryResponse
	if err := apphttp.DecodeBody(r, &rec); err != nil {
		return err
	}

	out, err := h.service.RecordPricePerShare(r.Context(), vaultID, &rec)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, out)
	return nil
}

func (h *HTTP) listUserAssetAmounts(w http.ResponseWriter, r *http.Request) error {
	vaultID, err := vaultIDParam(r)
	if err != nil {
		return err
	}

	out, err := h.service.ListUserAssetAmounts(r.Context(), vaultID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, out)
	return nil
}

func (h *HTTP) upsertUserAssetAmount(w http.ResponseWriter, r *http.Request) error {
	vaultID, err := vaultIDParam(r)
	if err != nil {
		return err
	}
	var rec schema.UserAssetAmount
	if err := apphttp.DecodeBody(r, &rec); err != nil {
		return err
	}

	out, err := h.service.UpsertUserAssetAmount(r.Context(), vaultID, &rec)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, out)
	return nil
}

func (h *HTTP) listPoints(w http.ResponseWriter, r *http.Request) error {
	vaultID, err := vaultIDParam(r)
	if err != nil {
		return err
	}

	out, err := h.service.ListPoints(r.Context(), vaultID)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, out)
	return nil
}

func (h *HTTP) upsertPoints(w http.ResponseWriter, r *http.Request) error {
	vaultID, err := vaultIDParam(r)
	if err != nil {
		return err
	}
	var rec schema.PointResponse
	if err := apphttp.DecodeBody(r, &rec); err != nil {
		return err
	}

	out, err := h.service.UpsertPoints(r.Context(), vaultID, &rec)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, out)
	return nil
}
