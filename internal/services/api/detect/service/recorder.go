package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"langrelay/internal/platform/logger"
	"langrelay/internal/services/api/detect/domain"
	"langrelay/internal/services/api/detect/repo"
)

// NopRecorder drops every record
type NopRecorder struct{}

// Record implements domain.Recorder
func (NopRecorder) Record(context.Context, domain.Record) {}

// BatchConfig tunes the BatchRecorder
type BatchConfig struct {
	Size       int           // flush when this many records are pending
	Every      time.Duration // flush at least this often
	Buffer     int           // queued records before Record starts dropping
	FlushLimit time.Duration // deadline of one insert
}

func (c BatchConfig) withDefaults() BatchConfig {
	if c.Size <= 0 {
		c.Size = 500
	}
	if c.Every <= 0 {
		c.Every = 5 * time.Second
	}
	if c.Buffer <= 0 {
		c.Buffer = 4 * c.Size
	}
	if c.FlushLimit <= 0 {
		c.FlushLimit = 10 * time.Second
	}
	return c
}

// BatchRecorder queues records and inserts them in batches from Run
// Record never blocks; a full queue drops the record and counts it
type BatchRecorder struct {
	repo    repo.Repo
	cfg     BatchConfig
	queue   chan domain.Record
	log     logger.Logger
	dropped atomic.Int64
	failed  atomic.Int64
	once    sync.Once
}

// NewBatchRecorder constructs a recorder over r
func NewBatchRecorder(r repo.Repo, cfg BatchConfig) *BatchRecorder {
	cfg = cfg.withDefaults()
	return &BatchRecorder{
		repo:  r,
		cfg:   cfg,
		queue: make(chan domain.Record, cfg.Buffer),
		log:   *logger.Named("detect.recorder"),
	}
}

// Record implements domain.Recorder
func (b *BatchRecorder) Record(_ context.Context, r domain.Record) {
	select {
	case b.queue <- r:
	default:
		if n := b.dropped.Add(1); n == 1 || n%1000 == 0 {
			b.log.Warn().Int64("dropped", n).Msg("detection queue full, dropping records")
		}
	}
}

// Dropped returns how many records were dropped on a full queue
func (b *BatchRecorder) Dropped() int64 { return b.dropped.Load() }

// Failed returns how many records were lost to insert errors
func (b *BatchRecorder) Failed() int64 { return b.failed.Load() }

// Run drains the queue until ctx ends, then flushes what is left
// only the first call runs; later calls return immediately
func (b *BatchRecorder) Run(ctx context.Context) {
	ran := false
	b.once.Do(func() { ran = true })
	if !ran {
		return
	}

	tick := time.NewTicker(b.cfg.Every)
	defer tick.Stop()

	pending := make([]domain.Record, 0, b.cfg.Size)
	for {
		select {
		case r := <-b.queue:
			pending = append(pending, r)
			if len(pending) >= b.cfg.Size {
				pending = b.flush(pending)
			}
		case <-tick.C:
			pending = b.flush(pending)
		case <-ctx.Done():
			b.flush(b.drain(pending))
			return
		}
	}
}

func (b *BatchRecorder) drain(pending []domain.Record) []domain.Record {
	for {
		select {
		case r := <-b.queue:
			pending = append(pending, r)
		default:
			return pending
		}
	}
}

// flush inserts pending on a context of its own so shutdown still writes the tail
func (b *BatchRecorder) flush(pending []domain.Record) []domain.Record {
	if len(pending) == 0 {
		return pending
	}
	ctx, cancel := context.WithTimeout(context.Background(), b.cfg.FlushLimit)
	defer cancel()
	if err := b.repo.Insert(ctx, pending); err != nil {
		b.failed.Add(int64(len(pending)))
		b.log.Error().Err(err).Int("records", len(pending)).Msg("detection insert failed")
	} else {
		b.log.Debug().Int("records", len(pending)).Msg("detections flushed")
	}
	return pending[:0]
}
