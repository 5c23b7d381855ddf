// Package solscan is a client for the Solscan-style network API serving
// network statistics and the validator list. Authentication is an optional
// bearer token; without one the public endpoints are used as-is.
package solscan

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ssgreg/repeat"

	"github.com/stakeseer/solstake/internal/lib/misc"
	"github.com/stakeseer/solstake/internal/staking"
)

const (
	DefaultBaseURL = "https://api.solscan.io"

	// DefaultInflationRate is assumed when the stats endpoint omits the
	// inflation field (or fails entirely and an empty mapping is used).
	DefaultInflationRate = 0.08
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, baseURL, apiToken string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiToken:   apiToken,
		logger:     logger,
	}
}

// NewClientWithHTTP is intended for tests wanting a custom transport.
func NewClientWithHTTP(logger *slog.Logger, httpClient *http.Client, baseURL, apiToken string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL, apiToken: apiToken, logger: logger}
}

// NetworkStats returns the raw stats mapping from /v1/network/stats.
// Use InflationRate to read the inflation field out of it.
func (c *Client) NetworkStats(ctx context.Context) (map[string]any, error) {
	var stats map[string]any
	err := c.getJSON(ctx, fmt.Sprintf("%s/v1/network/stats", c.baseURL), &stats)
	if err != nil {
		return nil, fmt.Errorf("fetching network stats: %w", err)
	}
	return stats, nil
}

// InflationRate reads the inflation fraction from a stats mapping, falling
// back to DefaultInflationRate when absent or non-numeric.
func InflationRate(stats map[string]any) float64 {
	if rate, ok := coerceFloat(stats["inflation"]); ok {
		return rate
	}
	return DefaultInflationRate
}

// Validators fetches up to limit validator records from /v1/validators.
// Individual fields that are missing or fail numeric coercion are left
// unset on the record rather than failing the fetch; the ranker drops
// records it can't score.
func (c *Client) Validators(ctx context.Context, limit int) ([]staking.ValidatorRecord, error) {
	var body struct {
		Data []map[string]any `json:"data"`
	}
	url := fmt.Sprintf("%s/v1/validators?limit=%d&offset=0", c.baseURL, limit)
	if err := c.getJSON(ctx, url, &body); err != nil {
		return nil, fmt.Errorf("fetching validators: %w", err)
	}

	records := make([]staking.ValidatorRecord, 0, len(body.Data))
	for _, raw := range body.Data {
		records = append(records, recordFromRaw(raw))
	}
	return records, nil
}

// getJSON performs a GET with the bearer token (if set), a single bounded
// retry on transient failure, and decodes the 200 response body into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	// LimitMaxTries must precede the op so the bound is checked before each
	// attempt runs: 2 tries total, i.e. one retry.
	return repeat.Repeat(
		repeat.LimitMaxTries(2),
		repeat.Fn(func() error {
			if err := c.doGetJSON(ctx, url, out); err != nil {
				return repeat.HintTemporary(err)
			}
			return nil
		}),
		repeat.StopOnSuccess(),
		repeat.FnOnError(func(err error) error {
			misc.Warnf(c.logger, "retrying solscan call:%s, error:%s", url, err.Error())
			return err
		}),
		repeat.WithDelay(
			repeat.SetContextHintStop(),
			repeat.ExponentialBackoff(500*time.Millisecond).Set(),
		),
	)
}

func (c *Client) doGetJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// recordFromRaw maps one raw validator entry onto a ValidatorRecord,
// coercing each numeric field independently. The source serves commission
// in percentage points; it is normalized to the Commission type here, once,
// so downstream code never re-interprets units.
func recordFromRaw(raw map[string]any) staking.ValidatorRecord {
	var rec staking.ValidatorRecord
	if s, ok := raw["name"].(string); ok {
		rec.Name = s
	}
	if s, ok := raw["votePubkey"].(string); ok {
		rec.VotePubkey = s
	}
	if f, ok := coerceFloat(raw["commission"]); ok {
		commission := staking.CommissionFromPercent(f)
		rec.Commission = &commission
	}
	if f, ok := coerceFloat(raw["apy"]); ok {
		apy := f
		rec.APYPercent = &apy
	}
	if f, ok := coerceFloat(raw["creditScore"]); ok {
		credit := f
		rec.CreditScore = &credit
	}
	if f, ok := coerceFloat(raw["totalActiveStake"]); ok && f >= 0 {
		rec.ActiveStakeLamports = uint64(f)
	}
	return rec
}
