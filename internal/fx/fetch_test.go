package fx_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthfolio/networth_backend/internal/fx"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestFetcher_RefreshReplacesTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"USD":1,"EUR":0.95,"GBP":0.79,"JPY":151.2}}`))
	}))
	defer srv.Close()

	table := fx.NewTable()
	fetcher := fx.NewFetcher(srv.URL, table, discardLogger())

	err := fetcher.Refresh(context.Background())

	require.NoError(t, err)
	snapshot := table.Snapshot()
	assert.True(t, snapshot["EUR"].Equal(decimal.RequireFromString("0.95")))
	assert.True(t, snapshot["USD"].Equal(decimal.NewFromInt(1)))
	assert.Contains(t, snapshot, "JPY")
	// The fetched table replaces the defaults wholesale.
	assert.NotContains(t, snapshot, "RON")
}

func TestFetcher_FailuresLeaveTableUnchanged(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"rates": not json`))
			},
		},
		{
			name: "empty rates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"rates":{}}`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			table := fx.NewTable()
			fetcher := fx.NewFetcher(srv.URL, table, discardLogger())

			err := fetcher.Refresh(context.Background())

			require.Error(t, err)
			// Defaults persist when no fetch has ever succeeded.
			snapshot := table.Snapshot()
			assert.True(t, snapshot["RON"].Equal(decimal.RequireFromString("4.56")))
			assert.True(t, snapshot["EUR"].Equal(decimal.RequireFromString("0.92")))
		})
	}
}

func TestFetcher_NetworkErrorLeavesTableUnchanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Closed up front so the request fails at the dial.

	table := fx.NewTable()
	fetcher := fx.NewFetcher(srv.URL, table, discardLogger())

	err := fetcher.Refresh(context.Background())

	require.Error(t, err)
	assert.True(t, table.Snapshot()["EUR"].Equal(decimal.RequireFromString("0.92")))
}
