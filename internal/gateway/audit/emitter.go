package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"click-gateway/internal/gateway/domain"

	"go.uber.org/zap"
)

const (
	defaultMaxInFlight = 256
	defaultTimeout     = 2 * time.Second
)

// Emitter dispatches audit events asynchronously. Emit never blocks: when
// MaxInFlight dispatches are already running the event is dropped.
type Emitter struct {
	sinks    []Sink
	enricher *Enricher
	logger   *zap.Logger
	timeout  time.Duration
	slots    chan struct{}
	wg       sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// EmitterOptions tunes dispatch.
type EmitterOptions struct {
	MaxInFlight int
	Timeout     time.Duration
}

// NewEmitter creates an emitter writing to sinks. With no sinks every Emit is a no-op.
func NewEmitter(sinks []Sink, enricher *Enricher, logger *zap.Logger, opts EmitterOptions) *Emitter {
	if opts.MaxInFlight <= 0 {
		opts.MaxInFlight = defaultMaxInFlight
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if enricher == nil {
		enricher = NewEnricher()
	}
	return &Emitter{
		sinks:    sinks,
		enricher: enricher,
		logger:   logger,
		timeout:  opts.Timeout,
		slots:    make(chan struct{}, opts.MaxInFlight),
	}
}

// Enabled reports whether any sink is configured.
func (e *Emitter) Enabled() bool {
	return e != nil && len(e.sinks) > 0
}

// Emit hands event to the sinks in the background.
func (e *Emitter) Emit(event domain.AuditEvent) {
	if !e.Enabled() {
		return
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return
	}

	select {
	case e.slots <- struct{}{}:
	default:
		e.logger.Debug("audit dispatch saturated, dropping event", zap.String("event_id", event.ID))
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer func() { <-e.slots }()
		e.dispatch(event)
	}()
}

func (e *Emitter) dispatch(event domain.AuditEvent) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("audit dispatch panicked", zap.String("event_id", event.ID), zap.Any("panic", r))
		}
	}()

	event = e.enricher.Enrich(event)

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()

	for _, sink := range e.sinks {
		if err := safeWrite(ctx, sink, event); err != nil {
			// Event is lost for this sink; the redirect already went out.
			e.logger.Warn("failed to write audit event",
				zap.String("sink", sink.Name()),
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
		}
	}
}

func safeWrite(ctx context.Context, sink Sink, event domain.AuditEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sink panicked: %v", r)
		}
	}()
	return sink.Write(ctx, event)
}

// Close stops accepting events and waits for in-flight dispatches until ctx
// is done. Events still in flight after that are abandoned.
func (e *Emitter) Close(ctx context.Context) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
