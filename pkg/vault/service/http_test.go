package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harmonixfi/harmonix-api/pkg/schema"
	"github.com/harmonixfi/harmonix-api/pkg/vault"
	"github.com/harmonixfi/harmonix-api/pkg/vault/service/mocks"
)

func newVaultTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	RegisterIngestRoutes(r, svc, zap.NewNop())
	return r
}

type errorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var got errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestVaultHTTP_ListPricePerShareHistories(t *testing.T) {
	vaultID := uuid.New()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	row := &schema.PricePerShareHistoryResponse{ID: uuid.New(), VaultID: vaultID, PricePerShare: 1.05, Datetime: from}

	svc := mocks.NewService(t)
	svc.EXPECT().
		ListPricePerShareHistories(mock.Anything, vaultID, mock.MatchedBy(func(q vault.HistoryQuery) bool {
			return q.From != nil && q.From.Equal(from) && q.To == nil && q.Limit == 25
		})).
		Return([]*schema.PricePerShareHistoryResponse{row}, nil).Once()

	rec := serve(t, newVaultTestServer(svc), http.MethodGet,
		"/vaults/"+vaultID.String()+"/price-per-share-histories?from=2024-01-01T00:00:00Z&limit=25", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []schema.PricePerShareHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, row.ID, got[0].ID)
	assert.Equal(t, 1.05, got[0].PricePerShare)
}

func TestVaultHTTP_BadRequests(t *testing.T) {
	vaultID := uuid.New().String()

	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		wantMsg string
	}{
		{
			name:    "vault id not a uuid",
			method:  http.MethodGet,
			target:  "/vaults/not-a-uuid/points",
			wantMsg: "vault_id must be a UUID",
		},
		{
			name:    "from not RFC3339",
			method:  http.MethodGet,
			target:  "/vaults/" + vaultID + "/price-per-share-histories?from=yesterday",
			wantMsg: "from must be an RFC3339 timestamp",
		},
		{
			name:    "zero limit",
			method:  http.MethodGet,
			target:  "/vaults/" + vaultID + "/price-per-share-histories?limit=0",
			wantMsg: "limit must be a positive integer",
		},
		{
			name:    "non numeric limit",
			method:  http.MethodGet,
			target:  "/vaults/" + vaultID + "/price-per-share-histories?limit=ten",
			wantMsg: "limit must be a positive integer",
		},
		{
			name:    "empty body",
			method:  http.MethodPut,
			target:  "/vaults/" + vaultID + "/points",
			wantMsg: "request body is empty",
		},
		{
			name:    "missing required key",
			method:  http.MethodPut,
			target:  "/vaults/" + vaultID + "/points",
			body:    `{"wallet":"0x52908400098527886e0f7030069857d2e4169ee7","amount":1}`,
			wantMsg: "points: field required",
		},
		{
			name:    "wrong kind",
			method:  http.MethodPost,
			target:  "/vaults/" + vaultID + "/price-per-share-histories",
			body:    `{"id":"5f0c2b8e-7d0e-4d55-9a3e-0b1d2f9c6a11","vault_id":"` + vaultID + `","price_per_share":"1.0","datetime":"2024-03-01T12:00:00Z"}`,
			wantMsg: "price_per_share: expected float64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newVaultTestServer(mocks.NewService(t)), tt.method, tt.target, tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			got := decodeError(t, rec)
			assert.Equal(t, tt.wantMsg, got.Error)
			assert.Equal(t, http.StatusBadRequest, got.Code)
		})
	}
}

func TestVaultHTTP_RecordPricePerShare_Created(t *testing.T) {
	vaultID := uuid.New()
	id := uuid.New()

	svc := mocks.NewService(t)
	svc.EXPECT().
		RecordPricePerShare(mock.Anything, vaultID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, rec *schema.PricePerShareHistoryResponse) (*schema.PricePerShareHistoryResponse, error) {
			return rec, nil
		}).Once()

	body := `{"id":"` + id.String() + `","vault_id":"` + vaultID.String() + `","price_per_share":1.0734,"datetime":"2024-03-01T12:00:00Z"}`
	rec := serve(t, newVaultTestServer(svc), http.MethodPost, "/vaults/"+vaultID.String()+"/price-per-share-histories", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got schema.PricePerShareHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 1.0734, got.PricePerShare)
}

func TestVaultHTTP_UpsertUserAssetAmount_KeepsUint256Exact(t *testing.T) {
	vaultID := uuid.New()
	const amount = "115792089237316195423570985008687907853269984665640564039457584007913129639935"

	svc := mocks.NewService(t)
	svc.EXPECT().
		UpsertUserAssetAmount(mock.Anything, vaultID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, rec *schema.UserAssetAmount) (*schema.UserAssetAmount, error) {
			return rec, nil
		}).Once()

	body := `{"user_address":"0x52908400098527886e0f7030069857d2e4169ee7","asset_amount":1.5,"asset_amount_in_uint256":` + amount + `}`
	rec := serve(t, newVaultTestServer(svc), http.MethodPut, "/vaults/"+vaultID.String()+"/user-asset-amounts", body)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"asset_amount_in_uint256":`+amount)
}

func TestVaultHTTP_ServiceError_ReturnsInternal(t *testing.T) {
	vaultID := uuid.New()

	svc := mocks.NewService(t)
	svc.EXPECT().ListUserAssetAmounts(mock.Anything, vaultID).Return(nil, errors.New("db unavailable")).Once()

	rec := serve(t, newVaultTestServer(svc), http.MethodGet, "/vaults/"+vaultID.String()+"/user-asset-amounts", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "Unexpected Service Error", got.Error)
}

func TestVaultHTTP_ListPoints_EmptyIsArray(t *testing.T) {
	vaultID := uuid.New()

	svc := mocks.NewService(t)
	svc.EXPECT().ListPoints(mock.Anything, vaultID).Return([]*schema.PointResponse{}, nil).Once()

	rec := serve(t, newVaultTestServer(svc), http.MethodGet, "/vaults/"+vaultID.String()+"/points", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
