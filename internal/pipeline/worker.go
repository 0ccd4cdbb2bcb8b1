package pipeline

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/dgallion1/docsplit/internal/config"
	"github.com/dgallion1/docsplit/internal/document"
	"github.com/dgallion1/docsplit/internal/parser"
	"github.com/dgallion1/docsplit/internal/segment"
	"github.com/dgallion1/docsplit/internal/store"
	"github.com/dgallion1/docsplit/internal/summary"
)

// Worker runs the segmentation pipeline for a single document job.
type Worker struct {
	store   *store.Store
	builder *summary.Builder
	log     *slog.Logger

	pdfFallback        bool
	maxConcurrentWrite int
}

func NewWorker(st *store.Store, builder *summary.Builder, log *slog.Logger, cfg config.Config) *Worker {
	return &Worker{
		store:              st,
		builder:            builder,
		log:                log,
		pdfFallback:        cfg.PDFFallbackPdftotext,
		maxConcurrentWrite: cfg.MaxConcurrentWrite,
	}
}

// Process runs parse -> segment -> summarize -> write for a job.
func (w *Worker) Process(job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if pdfParser, ok := p.(*parser.PDFParser); ok {
		pdfParser.FallbackPdftotext = w.pdfFallback
	}

	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}
	if job.Title != "" {
		doc.Title = job.Title
	}

	// Phase 2: Segment
	job.SetStatus(StatusSegmenting, "segmenting")
	sections, strategy, err := segment.Split(doc, log)
	if err != nil {
		log.Error("segmentation failed", "error", err)
		job.AddError(fmt.Sprintf("segment: %s", err))
		job.SetStatus(StatusFailed, "segmenting")
		return
	}
	job.SetSegmented(doc.PageCount(), len(sections), string(strategy))
	log.Info("segmented document", "sections", len(sections), "strategy", strategy)

	if len(sections) == 0 {
		job.AddError("no sections produced")
		job.SetStatus(StatusFailed, "segmenting")
		return
	}

	// Phase 3: Summarize. The summary is rendered before any concurrent
	// writes so its table of contents keeps document order.
	job.SetStatus(StatusSummarizing, "summarizing")
	rendered := w.builder.Render(sections, doc.PageCount())

	// Phase 4: Write artifacts with bounded concurrency. Sections are
	// independent after segmentation, so write order does not matter.
	job.SetStatus(StatusWriting, "writing")
	hadErrors := w.writeArtifacts(job, sections, rendered, log)

	written := job.Snapshot().Progress.SectionsWritten
	switch {
	case hadErrors && written > 0:
		job.SetStatus(StatusPartial, "done")
	case hadErrors:
		job.SetStatus(StatusFailed, "writing")
	default:
		job.SetStatus(StatusCompleted, "done")
	}
}

func (w *Worker) writeArtifacts(job *Job, sections []document.Section, rendered string, log *slog.Logger) bool {
	hadErrors := false

	if err := w.store.WriteSummary(job.DocID, rendered); err != nil {
		log.Error("summary write failed", "error", err)
		job.AddError(fmt.Sprintf("summary: %s", err))
		hadErrors = true
	}
	if err := w.store.WriteSectionIndex(job.DocID, sections); err != nil {
		log.Error("section index write failed", "error", err)
		job.AddError(fmt.Sprintf("sections: %s", err))
		hadErrors = true
	}

	type writeResult struct {
		idx int
		err error
	}
	results := make(chan writeResult, len(sections))
	sem := make(chan struct{}, w.maxConcurrentWrite)

	for i, sec := range sections {
		sem <- struct{}{}
		go func(i int, sec document.Section) {
			defer func() { <-sem }()
			_, err := w.store.WriteSection(job.DocID, i+1, sec)
			results <- writeResult{idx: i, err: err}
		}(i, sec)
	}

	for range sections {
		r := <-results
		if r.err != nil {
			log.Error("section write failed", "section", r.idx+1, "error", r.err)
			job.AddError(fmt.Sprintf("section %d: %s", r.idx+1, r.err))
			hadErrors = true
			continue
		}
		job.IncrSectionsWritten()
	}

	return hadErrors
}
