// Package coingecko is a minimal client for the CoinGecko simple-price API,
// used as the tool's spot price source.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ssgreg/repeat"

	"github.com/stakeseer/solstake/internal/lib/misc"
)

const DefaultBaseURL = "https://api.coingecko.com"

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// NewClientWithHTTP is intended for tests wanting a custom transport.
func NewClientWithHTTP(logger *slog.Logger, httpClient *http.Client, baseURL string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL, logger: logger}
}

// SolPriceUSD returns the current SOL spot price in USD. Transient failures
// get a single bounded retry; callers decide how to degrade beyond that.
func (c *Client) SolPriceUSD(ctx context.Context) (float64, error) {
	var price float64
	// LimitMaxTries must precede the op so the bound is checked before each
	// attempt runs: 2 tries total, i.e. one retry.
	err := repeat.Repeat(
		repeat.LimitMaxTries(2),
		repeat.Fn(func() error {
			p, err := c.fetchPrice(ctx)
			if err != nil {
				return repeat.HintTemporary(err)
			}
			price = p
			return nil
		}),
		repeat.StopOnSuccess(),
		repeat.FnOnError(func(err error) error {
			misc.Warnf(c.logger, "retrying price fetch, error:%s", err.Error())
			return err
		}),
		repeat.WithDelay(
			repeat.SetContextHintStop(),
			repeat.ExponentialBackoff(500*time.Millisecond).Set(),
		),
	)
	if err != nil {
		return 0, fmt.Errorf("fetching SOL price: %w", err)
	}
	return price, nil
}

func (c *Client) fetchPrice(ctx context.Context) (float64, error) {
	url := fmt.Sprintf("%s/api/v3/simple/price?ids=solana&vs_currencies=usd", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	// {"solana":{"usd":123.45}}
	var body map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decoding response: %w", err)
	}
	quote, ok := body["solana"]
	if !ok {
		return 0, fmt.Errorf("response missing solana quote")
	}
	price, ok := quote["usd"]
	if !ok {
		return 0, fmt.Errorf("response missing usd price")
	}
	return price, nil
}
