package store

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

// KV is the part of Store the progress adapter needs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// opTimeout bounds a single progress read or write.
const opTimeout = 2 * time.Second

// ProgressStore adapts a KV to the machine's synchronous, best-effort
// storage. Failures are logged and the session keeps its in-memory state.
type ProgressStore struct {
	kv  KV
	log logrus.FieldLogger
}

// NewProgressStore wraps kv.
func NewProgressStore(kv KV, log logrus.FieldLogger) *ProgressStore {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ProgressStore{kv: kv, log: log}
}

// Get returns the value under key. Missing keys and read failures both
// report false.
func (p *ProgressStore) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	v, err := p.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			p.log.WithField("key", key).WithError(err).Warn("read progress")
		}
		return "", false
	}
	return v, true
}

// Set writes value under key.
func (p *ProgressStore) Set(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if err := p.kv.Set(ctx, key, value); err != nil {
		p.log.WithField("key", key).WithError(err).Warn("write progress")
	}
}
