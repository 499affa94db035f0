package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ProbablyMaybeNo/campaign-console/internal/pagetext"
	"github.com/ProbablyMaybeNo/campaign-console/internal/rulebook"
	"github.com/ProbablyMaybeNo/campaign-console/internal/segment"
	"github.com/ProbablyMaybeNo/campaign-console/internal/store"
)

// Worker processes a single rulebook ingestion job: page-text extraction,
// section recovery, chunking, then persistence. Each document runs
// sequentially inside one worker; parallelism lives across documents.
type Worker struct {
	sources  store.SourceStore
	sections store.SectionStore
	chunks   store.ChunkStore
	log      *slog.Logger
	segCfg   segment.Config
	stats    *IngestStats

	pdfFallback bool
}

func NewWorker(sources store.SourceStore, sections store.SectionStore, chunks store.ChunkStore, log *slog.Logger, segCfg segment.Config, stats *IngestStats, pdfFallback bool) *Worker {
	return &Worker{
		sources:     sources,
		sections:    sections,
		chunks:      chunks,
		log:         log,
		segCfg:      segCfg,
		stats:       stats,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full ingest pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "source_id", job.SourceID, "filename", job.Filename)
	started := time.Now()

	// Phase 1: page-text extraction.
	job.SetStatus(StatusExtractingText, "extracting_text")
	src, err := pagetext.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting_text")
		return
	}
	if p, ok := src.(*pagetext.PDFSource); ok {
		p.FallbackPdftotext = w.pdfFallback
	}
	pages, err := src.Pages(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("page text extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting_text")
		return
	}

	// Phase 2: recover the section outline.
	job.SetStatus(StatusSectioning, "sectioning")
	sections := segment.ExtractSections(pages)

	// Phase 3: chunk.
	job.SetStatus(StatusChunking, "chunking")
	cfg := w.segCfg
	if job.TargetSize > 0 {
		cfg.TargetSize = job.TargetSize
	}
	if job.OverlapSize > 0 {
		cfg.OverlapSize = job.OverlapSize
	}
	chunks := segment.Assemble(pages, sections, cfg)
	job.SetCounts(len(pages), len(sections), len(chunks))
	log.Info("segmented rulebook", "pages", len(pages), "sections", len(sections), "chunks", len(chunks))

	// Phase 4: persist. Empty input is zero chunks, not a failure.
	job.SetStatus(StatusStoring, "storing")
	now := time.Now()
	title := job.Title
	if title == "" {
		title = strings.TrimSuffix(job.Filename, "."+extOf(job.Filename))
	}
	if err := w.sources.Insert(ctx, &store.SourceRecord{
		ID:        job.SourceID,
		Title:     title,
		Filename:  job.Filename,
		PageCount: len(pages),
		CreatedAt: now,
	}); err != nil {
		log.Error("source insert failed", "error", err)
		job.AddError(fmt.Sprintf("store source: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}
	if err := w.sections.InsertBatch(ctx, sectionRecords(job.SourceID, sections, now)); err != nil {
		log.Error("section insert failed", "error", err)
		job.AddError(fmt.Sprintf("store sections: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}
	if err := w.chunks.InsertBatch(ctx, chunkRecords(job.SourceID, chunks, now)); err != nil {
		log.Error("chunk insert failed", "error", err)
		job.AddError(fmt.Sprintf("store chunks: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	if w.stats != nil {
		w.stats.Record(time.Since(started).Milliseconds())
	}
	log.Info("ingest complete", "duration_ms", time.Since(started).Milliseconds())
	job.SetStatus(StatusCompleted, "done")
}

func sectionRecords(sourceID string, sections []rulebook.Section, now time.Time) []*store.SectionRecord {
	recs := make([]*store.SectionRecord, 0, len(sections))
	for _, sec := range sections {
		recs = append(recs, &store.SectionRecord{
			ID:          uuid.NewString(),
			SourceID:    sourceID,
			Title:       sec.Title,
			SectionPath: sec.SectionPath,
			PageStart:   sec.PageStart,
			PageEnd:     sec.PageEnd,
			Text:        sec.Text,
			CreatedAt:   now,
		})
	}
	return recs
}

func chunkRecords(sourceID string, chunks []rulebook.Chunk, now time.Time) []*store.ChunkRecord {
	recs := make([]*store.ChunkRecord, 0, len(chunks))
	for _, c := range chunks {
		recs = append(recs, &store.ChunkRecord{
			ID:          uuid.NewString(),
			SourceID:    sourceID,
			SectionID:   c.SectionID,
			SectionPath: c.SectionPath,
			OrderIndex:  c.OrderIndex,
			Text:        c.Text,
			PageStart:   c.PageStart,
			PageEnd:     c.PageEnd,
			Keywords:    c.Keywords,
			Hints:       c.Hints,
			CreatedAt:   now,
		})
	}
	return recs
}

func extOf(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 && i+1 < len(filename) {
		return filename[i+1:]
	}
	return ""
}
