package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store holds live sessions in memory and evicts the ones idle past the
// configured TTL. A background janitor sweeps at the given interval.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl      time.Duration
	interval time.Duration
	logger   *zap.SugaredLogger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

type Config struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

func NewStore(cfg Config, logger *zap.SugaredLogger) *Store {
	interval := cfg.SweepInterval
	if interval == 0 {
		interval = time.Minute
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Store{
		sessions: make(map[string]*Session),
		ttl:      cfg.TTL,
		interval: interval,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Get returns the session with the given ID and marks it active.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	sess, ok := st.sessions[id]
	st.mu.RUnlock()

	if ok {
		sess.touch(time.Now())
	}

	return sess, ok
}

// Create registers a fresh session with a random ID.
func (st *Store) Create() *Session {
	sess := newSession(uuid.NewString())

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	return sess
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Start launches the eviction janitor.
func (st *Store) Start() {
	st.logger.Infow("starting session janitor", "ttl", st.ttl, "interval", st.interval)

	go func() {
		defer close(st.done)

		ticker := time.NewTicker(st.interval)
		defer ticker.Stop()

		for {
			select {
			case <-st.ctx.Done():
				return
			case <-ticker.C:
				st.sweep(time.Now())
			}
		}
	}()
}

func (st *Store) Stop() {
	st.logger.Info("stopping session janitor")
	st.cancel()
	<-st.done
}

func (st *Store) sweep(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()

	evicted := 0
	for id, sess := range st.sessions {
		if sess.idleSince(now) > st.ttl {
			delete(st.sessions, id)
			evicted++
		}
	}

	if evicted > 0 {
		st.logger.Infow("evicted idle sessions", "count", evicted, "remaining", len(st.sessions))
	}
}
