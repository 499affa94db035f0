package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ProbablyMaybeNo/campaign-console/internal/config"
	"github.com/ProbablyMaybeNo/campaign-console/internal/segment"
	"github.com/ProbablyMaybeNo/campaign-console/internal/store"
)

// Orchestrator manages the rulebook ingestion pipeline: a buffered job
// queue drained by a pool of workers. Documents are independent, so the
// pool runs them concurrently; chunk ordering within a document stays
// sequential inside its worker.
type Orchestrator struct {
	jobs     *JobStore
	queue    chan *Job
	sources  store.SourceStore
	sections store.SectionStore
	chunks   store.ChunkStore
	log      *slog.Logger
	cfg      config.Config
	segCfg   segment.Config
	stats    *IngestStats

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. Call Start to launch workers.
func NewOrchestrator(cfg config.Config, sources store.SourceStore, sections store.SectionStore, chunks store.ChunkStore, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:     NewJobStore(cfg.JobTTL),
		queue:    make(chan *Job, cfg.MaxQueueSize),
		sources:  sources,
		sections: sections,
		chunks:   chunks,
		log:      log,
		cfg:      cfg,
		segCfg: segment.Config{
			TargetSize:  cfg.ChunkTargetSize,
			MinSize:     cfg.ChunkMinSize,
			MaxSize:     cfg.ChunkMaxSize,
			OverlapSize: cfg.ChunkOverlapSize,
		},
		stats: NewIngestStats(time.Hour),
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for range o.cfg.WorkerCount {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.sources, o.sections, o.chunks, o.log, o.segCfg, o.stats, o.cfg.PDFFallbackPdftotext)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats returns the rolling ingest latency stats.
func (o *Orchestrator) Stats() *IngestStats {
	return o.stats
}
