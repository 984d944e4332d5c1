// Package pendle mirrors Pendle fixed-yield markets into the local store.
package pendle

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/harmonixfi/harmonix-api/pkg/config"
	"github.com/harmonixfi/harmonix-api/pkg/schema"
)

const (
	defaultPageSize = 100
	// maxPages bounds a single chain fetch if the upstream keeps returning full pages.
	maxPages = 50
	// maxErrorBody caps how much of a failed response is kept in the error.
	maxErrorBody = 256
)

// ErrListingTruncated is returned alongside the markets read so far when a chain
// still has full pages after maxPages.
var ErrListingTruncated = errors.New("pendle market listing truncated")

type marketsPage struct {
	Total   int         `json:"total"`
	Skip    int         `json:"skip"`
	Results []marketRaw `json:"results"`
}

type marketRaw struct {
	Address               string  `json:"address"`
	ChainID               int64   `json:"chainId"`
	Symbol                string  `json:"symbol"`
	ProName               string  `json:"proName"`
	Expiry                string  `json:"expiry"`
	UnderlyingInterestAPY float64 `json:"underlyingInterestApy"`
	ImpliedAPY            float64 `json:"impliedApy"`
	PTDiscount            float64 `json:"ptDiscount"`
}

// Client reads market listings from the Pendle v2 REST API
type Client struct {
	http     *resty.Client
	pageSize int
}

// NewClient creates a Pendle API client from cfg
func NewClient(cfg *config.PendleConfig) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL).
			SetHeader("Accept", "application/json").
			SetTimeout(timeout),
		pageSize: pageSize,
	}
}

// FetchMarkets returns every market listed for chainID, following skip/limit
// paging until the upstream returns a short page. A listing longer than maxPages
// pages yields the markets read so far and ErrListingTruncated.
func (c *Client) FetchMarkets(ctx context.Context, chainID int64) ([]*schema.PendleMarket, error) {
	var out []*schema.PendleMarket

	for page, skip := 0, 0; page < maxPages; page++ {
		results, err := c.fetchPage(ctx, chainID, skip)
		if err != nil {
			return nil, err
		}
		for i := range results {
			out = append(out, toMarket(chainID, &results[i]))
		}
		if len(results) < c.pageSize {
			return out, nil
		}
		skip += len(results)
	}

	return out, fmt.Errorf("%w: chain %d after %d pages", ErrListingTruncated, chainID, maxPages)
}

func (c *Client) fetchPage(ctx context.Context, chainID int64, skip int) ([]marketRaw, error) {
	var page marketsPage

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("chain_id", strconv.FormatInt(chainID, 10)).
		SetQueryParam("skip", strconv.Itoa(skip)).
		SetQueryParam("limit", strconv.Itoa(c.pageSize)).
		SetResult(&page).
		Get("/core/v1/{chain_id}/markets")
	if err != nil {
		return nil, fmt.Errorf("fetch pendle markets for chain %d: %w", chainID, err)
	}
	if !resp.IsSuccess() {
		body := resp.String()
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, fmt.Errorf("fetch pendle markets for chain %d: unexpected status %d: %s", chainID, resp.StatusCode(), body)
	}

	return page.Results, nil
}

func toMarket(chainID int64, raw *marketRaw) *schema.PendleMarket {
	symbol := raw.Symbol
	if symbol == "" {
		symbol = raw.ProName
	}
	if raw.ChainID != 0 {
		chainID = raw.ChainID
	}

	return &schema.PendleMarket{
		ID:                    raw.Address,
		ChainID:               chainID,
		Symbol:                symbol,
		Expiry:                raw.Expiry,
		UnderlyingInterestAPY: raw.UnderlyingInterestAPY,
		ImpliedAPY:            raw.ImpliedAPY,
		PTDiscount:            raw.PTDiscount,
	}
}
