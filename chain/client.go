package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spacemeshos/go-chief/common/retryhttp"
	"github.com/spacemeshos/go-chief/metrics"
)

var (
	// ErrNoSigner is returned when a transaction is submitted without a configured key.
	ErrNoSigner = errors.New("no signer configured")
	// ErrTxReverted is returned when a mined transaction has a failed status.
	ErrTxReverted = errors.New("transaction reverted")
	// ErrEmptyResult is returned when a call that should return values returned nothing.
	ErrEmptyResult = errors.New("empty call result")
)

type Config struct {
	URL              string `mapstructure:"url"`
	retryhttp.Config `mapstructure:",squash"`
	// LogChunkSize splits log queries into block ranges of this size. Zero queries everything at once.
	LogChunkSize uint64 `mapstructure:"log-chunk-size"`
	// RequestsPerInterval caps the requests sent to the node during Interval. Zero disables the cap.
	RequestsPerInterval int           `mapstructure:"requests-per-interval"`
	Interval            time.Duration `mapstructure:"interval"`
}

func DefaultConfig() Config {
	return Config{
		URL:      "http://localhost:8545",
		Config:   retryhttp.DefaultConfig(),
		Interval: time.Second,
	}
}

// SignerConfig holds the credentials used for lift and cast transactions.
type SignerConfig struct {
	// Key is a hex encoded secp256k1 private key.
	Key string `mapstructure:"key"`
}

// PrivateKey parses the configured key. It returns nil without error when no key is set.
func (c SignerConfig) PrivateKey() (*ecdsa.PrivateKey, error) {
	if len(c.Key) == 0 {
		return nil, nil
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(c.Key, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}
	return key, nil
}

// Request is a single contract method invocation.
type Request struct {
	To     common.Address
	ABI    *abi.ABI
	Method string
	Args   []any
}

// LogQuery selects logs emitted by a single contract.
type LogQuery struct {
	Address   common.Address
	Topics    [][]common.Hash
	FromBlock uint64
}

// Backend is the part of the ethereum client used by Client.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// Client implements Caller, LogFilterer and Submitter on top of an ethereum node.
type Client struct {
	backend Backend
	key     *ecdsa.PrivateKey
	chunk   uint64
	limiter *rate.Limiter
	logger  *zap.Logger
	closer  func()
}

type Opt func(*Client)

func WithLogger(logger *zap.Logger) Opt {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithKey sets the key that signs submitted transactions.
func WithKey(key *ecdsa.PrivateKey) Opt {
	return func(c *Client) {
		c.key = key
	}
}

func WithLogChunkSize(size uint64) Opt {
	return func(c *Client) {
		c.chunk = size
	}
}

// WithRateLimit allows at most requests calls to the node per interval.
func WithRateLimit(requests int, interval time.Duration) Opt {
	return func(c *Client) {
		if requests <= 0 || interval <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Every(interval/time.Duration(requests)), requests)
	}
}

// New wraps an existing backend.
func New(backend Backend, opts ...Opt) *Client {
	c := &Client{
		backend: backend,
		logger:  zap.NewNop(),
		closer:  func() {},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial connects to the node at cfg.URL. http(s) endpoints go through a retrying transport.
func Dial(ctx context.Context, cfg Config, opts ...Opt) (*Client, error) {
	c := New(nil, append([]Opt{
		WithLogChunkSize(cfg.LogChunkSize),
		WithRateLimit(cfg.RequestsPerInterval, cfg.Interval),
	}, opts...)...)
	var (
		rc  *rpc.Client
		err error
	)
	if strings.HasPrefix(cfg.URL, "http://") || strings.HasPrefix(cfg.URL, "https://") {
		hc := retryhttp.New(cfg.Config, c.logger.Named("rpc"))
		rc, err = rpc.DialHTTPWithClient(cfg.URL, hc.StandardClient())
	} else {
		rc, err = rpc.DialContext(ctx, cfg.URL)
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.URL, err)
	}
	ec := ethclient.NewClient(rc)
	c.backend = ec
	c.closer = ec.Close
	c.logger.Info("connected to node",
		zap.String("url", cfg.URL),
		zap.Uint64("log chunk size", c.chunk),
		zap.Bool("signer", c.key != nil),
	)
	return c, nil
}

// Close releases the connection to the node.
func (c *Client) Close() {
	c.closer()
}

// From returns the address that signs submitted transactions.
func (c *Client) From() (common.Address, error) {
	if c.key == nil {
		return common.Address{}, ErrNoSigner
	}
	return crypto.PubkeyToAddress(c.key.PublicKey), nil
}

// Call packs the request, executes eth_call against the latest block and unpacks the result.
func (c *Client) Call(ctx context.Context, req Request) ([]any, error) {
	input, err := req.ABI.Pack(req.Method, req.Args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", req.Method, err)
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := c.backend.CallContract(ctx, ethereum.CallMsg{To: &req.To, Data: input}, nil)
	callDuration.WithLabelValues(req.Method, metrics.Outcome(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("call %s on %s: %w", req.Method, req.To, err)
	}
	if len(out) == 0 && len(req.ABI.Methods[req.Method].Outputs) > 0 {
		return nil, fmt.Errorf("call %s on %s: %w", req.Method, req.To, ErrEmptyResult)
	}
	values, err := req.ABI.Unpack(req.Method, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", req.Method, err)
	}
	return values, nil
}

// Submit signs and sends a transaction for the request.
func (c *Client) Submit(ctx context.Context, req Request) (*types.Transaction, error) {
	if c.key == nil {
		return nil, ErrNoSigner
	}
	chainID, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chain id: %w", err)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, chainID)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}
	opts.Context = ctx
	contract := bind.NewBoundContract(req.To, *req.ABI, c.backend, c.backend, c.backend)
	tx, err := contract.Transact(opts, req.Method, req.Args...)
	submitted.WithLabelValues(req.Method, metrics.Outcome(err)).Inc()
	if err != nil {
		return nil, fmt.Errorf("submit %s to %s: %w", req.Method, req.To, err)
	}
	c.logger.Info("transaction submitted",
		zap.String("method", req.Method),
		zap.Stringer("to", req.To),
		zap.Stringer("tx", tx.Hash()),
	)
	return tx, nil
}

// WaitMined blocks until the transaction is included. A failed receipt is returned
// together with ErrTxReverted.
func (c *Client) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("wait for %s: %w", tx.Hash(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("%w: %s in block %d", ErrTxReverted, tx.Hash(), receipt.BlockNumber)
	}
	c.logger.Info("transaction mined",
		zap.Stringer("tx", tx.Hash()),
		zap.Stringer("block", receipt.BlockNumber),
		zap.Uint64("gas used", receipt.GasUsed),
	)
	return receipt, nil
}

// FilterLogs returns logs of the query in chain order, optionally fetched in block chunks.
func (c *Client) FilterLogs(ctx context.Context, q LogQuery) ([]types.Log, error) {
	if c.chunk == 0 {
		return c.filter(ctx, q, q.FromBlock, nil)
	}
	head, err := c.backend.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("query head block: %w", err)
	}
	var all []types.Log
	for _, r := range chunks(q.FromBlock, head, c.chunk) {
		to := r.to
		logs, err := c.filter(ctx, q, r.from, &to)
		if err != nil {
			return nil, err
		}
		all = append(all, logs...)
	}
	return all, nil
}

func (c *Client) filter(ctx context.Context, q LogQuery, from uint64, to *uint64) ([]types.Log, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		Addresses: []common.Address{q.Address},
		Topics:    q.Topics,
	}
	if to != nil {
		query.ToBlock = new(big.Int).SetUint64(*to)
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	start := time.Now()
	logs, err := c.backend.FilterLogs(ctx, query)
	callDuration.WithLabelValues("eth_getLogs", metrics.Outcome(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("filter logs of %s from %d: %w", q.Address, from, err)
	}
	c.logger.Debug("fetched logs",
		zap.Stringer("address", q.Address),
		zap.Uint64("from", from),
		zap.Int("count", len(logs)),
	)
	return logs, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	return nil
}

type blockRange struct {
	from, to uint64
}

// chunks splits [from, to] into consecutive inclusive ranges of at most size blocks.
func chunks(from, to, size uint64) []blockRange {
	if size == 0 || from > to {
		return nil
	}
	var ranges []blockRange
	for start := from; start <= to; start += size {
		end := start + size - 1
		if end > to || end < start {
			end = to
		}
		ranges = append(ranges, blockRange{from: start, to: end})
		if end == to {
			break
		}
	}
	return ranges
}

// Single extracts the only value returned by a call.
func Single[T any](out []any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if len(out) != 1 {
		return zero, fmt.Errorf("expected a single value, got %d", len(out))
	}
	v, ok := out[0].(T)
	if !ok {
		return zero, fmt.Errorf("unexpected value type %T", out[0])
	}
	return v, nil
}
