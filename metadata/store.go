package metadata

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofrs/flock"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	lockFile       = ".lock"
	lockRetryDelay = 50 * time.Millisecond

	sourceMemory = "memory"
	sourceDisk   = "disk"
	sourceRemote = "remote"
)

type entry struct {
	data []byte
	err  error
}

// Store memoizes interface descriptions in memory and on disk.
// Descriptions are immutable once published so nothing is ever evicted from disk.
// Missing interfaces are remembered in memory only.
type Store struct {
	logger  *zap.Logger
	fetcher Fetcher
	dir     string
	size    int
	cache   *lru.Cache[common.Address, entry]
	group   singleflight.Group
}

type StoreOpt func(*Store)

func WithStoreLogger(logger *zap.Logger) StoreOpt {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithCacheDir enables the disk cache in dir.
func WithCacheDir(dir string) StoreOpt {
	return func(s *Store) {
		s.dir = dir
	}
}

func WithMemoryCache(size int) StoreOpt {
	return func(s *Store) {
		s.size = size
	}
}

func NewStore(fetcher Fetcher, opts ...StoreOpt) (*Store, error) {
	s := &Store{
		logger:  zap.NewNop(),
		fetcher: fetcher,
		size:    DefaultConfig().MemoryCache,
	}
	for _, opt := range opts {
		opt(s)
	}
	cache, err := lru.New[common.Address, entry](s.size)
	if err != nil {
		return nil, fmt.Errorf("create memory cache: %w", err)
	}
	s.cache = cache
	return s, nil
}

// Get returns the description of the contract at address, downloading it on first use.
func (s *Store) Get(ctx context.Context, address common.Address) ([]byte, error) {
	if e, ok := s.cache.Get(address); ok {
		lookups.WithLabelValues(sourceMemory).Inc()
		return e.data, e.err
	}
	v, err, _ := s.group.Do(address.Hex(), func() (any, error) {
		return s.load(ctx, address)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *Store) load(ctx context.Context, address common.Address) ([]byte, error) {
	if e, ok := s.cache.Get(address); ok {
		lookups.WithLabelValues(sourceMemory).Inc()
		return e.data, e.err
	}
	if s.dir != "" {
		data, err := os.ReadFile(s.path(address))
		switch {
		case err == nil:
			lookups.WithLabelValues(sourceDisk).Inc()
			s.cache.Add(address, entry{data: data})
			return data, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("read cached interface of %s: %w", address, err)
		}
	}

	lookups.WithLabelValues(sourceRemote).Inc()
	data, err := s.fetcher.Fetch(ctx, address)
	if errors.Is(err, ErrNoInterface) {
		s.cache.Add(address, entry{err: err})
		return nil, err
	} else if err != nil {
		return nil, err
	}
	if s.dir != "" {
		if err := s.persist(ctx, address, data); err != nil {
			s.logger.Warn("failed to persist interface", zap.Stringer("address", address), zap.Error(err))
		}
	}
	s.cache.Add(address, entry{data: data})
	return data, nil
}

// persist writes the description unless another process already did.
func (s *Store) persist(ctx context.Context, address common.Address, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create cache dir %s: %w", s.dir, err)
	}
	fl := flock.New(filepath.Join(s.dir, lockFile))
	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("flock %s: %w", fl.Path(), err)
	} else if !locked {
		return fmt.Errorf("cache dir %s is locked", s.dir)
	}
	defer fl.Unlock()

	path := s.path(address)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.logger.Debug("interface cached", zap.String("path", path))
	return nil
}

func (s *Store) path(address common.Address) string {
	return filepath.Join(s.dir, address.Hex()+".json")
}
