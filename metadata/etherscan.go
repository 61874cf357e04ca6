package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-chief/common/retryhttp"
	"github.com/spacemeshos/go-chief/metrics"
)

var (
	// ErrNoInterface is returned for contracts without a published interface.
	ErrNoInterface = errors.New("contract interface not available")
	// ErrRemote is returned when the service answers with an error other than a missing interface.
	ErrRemote = errors.New("metadata service error")
)

const statusOK = "1"

type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  string `json:"result"`
}

// Etherscan fetches verified contract interfaces from an etherscan compatible api.
type Etherscan struct {
	logger  *zap.Logger
	client  *retryablehttp.Client
	baseURL *url.URL
	apiKey  string
}

type EtherscanOpt func(*Etherscan)

func WithEtherscanLogger(logger *zap.Logger) EtherscanOpt {
	return func(e *Etherscan) {
		e.logger = logger
	}
}

// WithHTTPClient replaces the retrying client.
func WithHTTPClient(client *retryablehttp.Client) EtherscanOpt {
	return func(e *Etherscan) {
		e.client = client
	}
}

func NewEtherscan(cfg Config, opts ...EtherscanOpt) (*Etherscan, error) {
	baseURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse metadata url %q: %w", cfg.URL, err)
	}
	e := &Etherscan{
		logger:  zap.NewNop(),
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.client == nil {
		e.client = retryhttp.New(cfg.Config, e.logger.Named("etherscan"))
	}
	return e, nil
}

// Fetch returns the json interface description of the contract at address.
func (e *Etherscan) Fetch(ctx context.Context, address common.Address) ([]byte, error) {
	query := url.Values{}
	query.Set("module", "contract")
	query.Set("action", "getabi")
	query.Set("address", address.Hex())
	if e.apiKey != "" {
		query.Set("apikey", e.apiKey)
	}
	endpoint := *e.baseURL
	endpoint.RawQuery = query.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	res, err := e.client.Do(req)
	fetches.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("fetch interface of %s: %w", address, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %s, body: %s", ErrRemote, res.Status, string(data))
	}
	var body response
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("decoding response body: %w", err)
	}
	if body.Status != statusOK {
		e.logger.Debug("interface not returned",
			zap.Stringer("address", address),
			zap.String("message", body.Message),
			zap.String("result", body.Result),
		)
		if strings.Contains(strings.ToLower(body.Result), "not verified") {
			return nil, fmt.Errorf("%w: %s", ErrNoInterface, address)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrRemote, body.Message, body.Result)
	}
	return []byte(body.Result), nil
}
