// Package storemanager owns the process-wide PostgreSQL handle. It lazily
// establishes the connection on first use and de-duplicates concurrent
// initialization: however many requests race on a cold start, at most one
// connection attempt is ever in flight, and every waiter receives that
// attempt's outcome.
package storemanager

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/reelvault/reelvault/internal/common"
	"github.com/reelvault/reelvault/internal/logging"
)

// attempt is one in-flight connection attempt, shared by all callers that
// observe the manager in the connecting state. done is closed exactly once,
// after db/err are set.
type attempt struct {
	done chan struct{}
	db   *sql.DB
	err  error
}

// Manager implements the absent → connecting → {ready | failed} state
// machine. ready is terminal unless Invalidate is called; a failure resets
// the state to absent so the next caller retries.
type Manager struct {
	dsn      string
	timeout  time.Duration
	logger   logging.Logger
	onActive func(ctx context.Context, db *sql.DB) error

	// openDB is a test seam.
	openDB func(dsn string) (*sql.DB, error)

	mu      sync.Mutex
	db      *sql.DB  // non-nil means ready
	pending *attempt // non-nil means connecting
}

// NewManager builds a manager for the given DSN. onActive runs once per
// successful attempt before the handle is published (the app wires schema
// migrations here); it may be nil. Each attempt is bounded by timeout.
func NewManager(dsn string, timeout time.Duration, logger logging.Logger, onActive func(ctx context.Context, db *sql.DB) error) *Manager {
	return &Manager{
		dsn:      dsn,
		timeout:  timeout,
		logger:   logger.With("module", "storemanager"),
		onActive: onActive,
		openDB: func(dsn string) (*sql.DB, error) {
			return sql.Open("pgx", dsn)
		},
	}
}

// Acquire returns the shared database handle, connecting first if necessary.
// Safe for concurrent use. If the caller's context ends while an attempt is
// in flight, Acquire returns early but the attempt keeps running for the
// benefit of other waiters.
func (m *Manager) Acquire(ctx context.Context) (*sql.DB, error) {
	m.mu.Lock()
	if m.db != nil {
		db := m.db
		m.mu.Unlock()
		return db, nil
	}
	if m.pending == nil {
		a := &attempt{done: make(chan struct{})}
		m.pending = a
		go m.connect(a)
	}
	a := m.pending
	m.mu.Unlock()

	select {
	case <-a.done:
		if a.err != nil {
			return nil, a.err
		}
		return a.db, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, ctx.Err())
	}
}

// connect runs the single attempt for the current absent→connecting cycle.
// It is deliberately detached from any caller's context.
func (m *Manager) connect(a *attempt) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	db, err := m.open(ctx)

	m.mu.Lock()
	m.pending = nil
	if err == nil {
		m.db = db
	}
	m.mu.Unlock()

	if err != nil {
		connErr := classify(err)
		m.logger.Error(ctx, "store connection failed", "kind", connErr.Kind.String(), "error", err.Error())
		a.err = connErr
	} else {
		m.logger.Info(ctx, "store connection established")
		a.db = db
	}
	close(a.done)
}

func (m *Manager) open(ctx context.Context) (*sql.DB, error) {
	db, err := m.openDB(m.dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if m.onActive != nil {
		if err := m.onActive(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return db, nil
}

// Invalidate drops a ready handle so the next Acquire reconnects. A pending
// attempt is left alone.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	db := m.db
	m.db = nil
	m.mu.Unlock()

	if db != nil {
		_ = db.Close()
	}
}

// Close releases the handle on shutdown.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}
