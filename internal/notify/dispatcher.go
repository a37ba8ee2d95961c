package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const queueSize = 100

type Dispatcher struct {
	repo  Repository
	log   *zap.Logger
	queue chan Event
	done  sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(repo Repository, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		repo:  repo,
		log:   log.Named("notify"),
		queue: make(chan Event, queueSize),
	}

	d.done.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.done.Done()

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.handle(ctx, ev); err != nil {
			d.log.Error("notification failed",
				zap.String("kind", string(ev.Kind)),
				zap.Stringer("profile_id", ev.ProfileID),
				zap.Error(err),
			)
		}
		cancel()
	}
}

func (d *Dispatcher) handle(ctx context.Context, ev Event) error {
	settings, err := d.repo.GetSettings(ctx, ev.ProfileID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return d.repo.CreateNotifications(ctx, Build(ev, settings))
}

// Publish never blocks the request: when the queue is full the event is dropped.
func (d *Dispatcher) Publish(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("notify dispatcher closed, dropping event", zap.String("kind", string(ev.Kind)))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("notification queue full, dropping event", zap.String("kind", string(ev.Kind)))
	}
}

func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.done.Wait()
}

type Nop struct{}

func (Nop) Publish(Event) {}
