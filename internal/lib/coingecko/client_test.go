package coingecko_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stakeseer/solstake/internal/lib/coingecko"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSolPriceUSDParsesQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		assert.Equal(t, "solana", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		fmt.Fprint(w, `{"solana":{"usd":142.37}}`)
	}))
	defer server.Close()

	client := coingecko.NewClientWithHTTP(discardLogger(), server.Client(), server.URL)
	price, err := client.SolPriceUSD(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 142.37, price, 1e-9)
}

func TestSolPriceUSDRecoversAfterOneFailure(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"solana":{"usd":95.5}}`)
	}))
	defer server.Close()

	client := coingecko.NewClientWithHTTP(discardLogger(), server.Client(), server.URL)
	price, err := client.SolPriceUSD(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 95.5, price, 1e-9)
	assert.Equal(t, 2, hits)
}

func TestSolPriceUSDRetriedOnceThenReturned(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := coingecko.NewClientWithHTTP(discardLogger(), server.Client(), server.URL)
	_, err := client.SolPriceUSD(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, hits, "expected the original call plus a single retry")
}

func TestSolPriceUSDMissingQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"bitcoin":{"usd":60000}}`)
	}))
	defer server.Close()

	client := coingecko.NewClientWithHTTP(discardLogger(), server.Client(), server.URL)
	_, err := client.SolPriceUSD(context.Background())
	require.Error(t, err)
}
