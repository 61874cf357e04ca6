package metadata

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-chief/log/logtest"
)

const erc20 = `[{"constant":false,"inputs":[{"name":"rate","type":"uint256"}],"name":"setFee","outputs":[],"type":"function"}]`

func testConfig(url string) Config {
	cfg := DefaultConfig()
	cfg.URL = url
	cfg.APIKey = "secret"
	cfg.MaxRetries = 1
	cfg.RetryDelay = time.Millisecond
	cfg.MaxRetryDelay = time.Millisecond
	return cfg
}

func serve(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func writeResponse(t *testing.T, w http.ResponseWriter, body response) {
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestEtherscanFetch(t *testing.T) {
	address := common.HexToAddress("0x448a5065aebb8e423f0896e6c5d525c040f59af3")
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "contract", q.Get("module"))
		require.Equal(t, "getabi", q.Get("action"))
		require.Equal(t, address.Hex(), q.Get("address"))
		require.Equal(t, "secret", q.Get("apikey"))
		writeResponse(t, w, response{Status: "1", Message: "OK", Result: erc20})
	})

	e, err := NewEtherscan(testConfig(srv.URL), WithEtherscanLogger(logtest.New(t)))
	require.NoError(t, err)
	data, err := e.Fetch(context.Background(), address)
	require.NoError(t, err)
	require.JSONEq(t, erc20, string(data))
}

func TestEtherscanErrors(t *testing.T) {
	t.Run("not verified", func(t *testing.T) {
		srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
			writeResponse(t, w, response{Status: "0", Message: "NOTOK", Result: "Contract source code not verified"})
		})
		e, err := NewEtherscan(testConfig(srv.URL))
		require.NoError(t, err)
		_, err = e.Fetch(context.Background(), common.Address{1})
		require.ErrorIs(t, err, ErrNoInterface)
	})
	t.Run("rate limited", func(t *testing.T) {
		srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
			writeResponse(t, w, response{Status: "0", Message: "NOTOK", Result: "Max rate limit reached"})
		})
		e, err := NewEtherscan(testConfig(srv.URL))
		require.NoError(t, err)
		_, err = e.Fetch(context.Background(), common.Address{1})
		require.ErrorIs(t, err, ErrRemote)
		require.NotErrorIs(t, err, ErrNoInterface)
	})
	t.Run("bad status", func(t *testing.T) {
		srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		e, err := NewEtherscan(testConfig(srv.URL))
		require.NoError(t, err)
		_, err = e.Fetch(context.Background(), common.Address{1})
		require.ErrorIs(t, err, ErrRemote)
	})
	t.Run("malformed body", func(t *testing.T) {
		srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>"))
		})
		e, err := NewEtherscan(testConfig(srv.URL))
		require.NoError(t, err)
		_, err = e.Fetch(context.Background(), common.Address{1})
		require.ErrorContains(t, err, "decoding response body")
	})
}
