package main

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/arloliu/flint/buffer"
	"github.com/arloliu/flint/internal/config"
	"github.com/arloliu/flint/stream"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// run records cfg.Spans root spans nested cfg.Depth levels deep on each of
// cfg.Threads producers. Producers own their write buffers and take turns
// on the shared context.
func run(cfg *config.Config, logger *zap.Logger) (stream.Stats, error) {
	names, err := cfg.NameStrategy()
	if err != nil {
		return stream.Stats{}, err
	}

	ctx, err := stream.Open(cfg.Output, cfg.TimestampUnit,
		stream.WithMode(cfg.Mode()),
		stream.WithNameStrategy(names),
		stream.WithLogger(logger),
	)
	if err != nil {
		return ctx.Stats(), err
	}

	rec := &recorder{
		ctx:    ctx,
		start:  time.Now(),
		labels: spanLabels(cfg.Depth),
	}

	var g errgroup.Group
	for tid := 1; tid <= cfg.Threads; tid++ {
		producer := &producer{
			recorder: rec,
			buf:      buffer.New(cfg.BufferSize),
			tid:      uint32(tid), //nolint: gosec
		}

		g.Go(func() error {
			return producer.record(cfg.Spans)
		})
	}

	runErr := g.Wait()
	closeErr := ctx.Close()

	return ctx.Stats(), errors.Join(runErr, closeErr)
}

// recorder serializes producers on the shared stream context.
type recorder struct {
	mu     sync.Mutex
	ctx    *stream.Context
	start  time.Time
	labels []string
}

func (r *recorder) now() float64 {
	return float64(time.Since(r.start).Nanoseconds())
}

type producer struct {
	*recorder
	buf *buffer.WriteBuffer
	tid uint32
}

func (p *producer) record(spans int) error {
	for range spans {
		if err := p.span(0); err != nil {
			return err
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ctx.Flush(p.buf)
}

func (p *producer) span(level int) error {
	if err := p.begin(p.labels[level]); err != nil {
		return err
	}

	if level+1 < len(p.labels) {
		if err := p.span(level + 1); err != nil {
			return err
		}
	}

	return p.end()
}

func (p *producer) begin(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ctx.BeginTid(p.buf, p.now(), name, p.tid)
}

func (p *producer) end() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.ctx.EndTid(p.buf, p.now(), p.tid)
}

func spanLabels(depth int) []string {
	labels := make([]string, depth)
	for i := range labels {
		labels[i] = "level-" + strconv.Itoa(i)
	}

	return labels
}
