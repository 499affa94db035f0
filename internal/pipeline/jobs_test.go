package pipeline

import (
	"testing"
	"time"
)

func TestJob_StateTransitions(t *testing.T) {
	job := &Job{
		ID:        "test-1",
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusExtractingText, "extracting_text"},
		{StatusSectioning, "sectioning"},
		{StatusChunking, "chunking"},
		{StatusStoring, "storing"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		if job.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, job.Status)
		}
		if job.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, job.Phase)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", tr.status)
		}
	}
}

func TestJob_SetStatusFailed(t *testing.T) {
	job := &Job{
		ID:        "test-fail",
		Status:    StatusExtractingText,
		UpdatedAt: time.Now(),
	}
	job.SetStatus(StatusFailed, "extraction error")
	if job.Status != StatusFailed {
		t.Errorf("expected status %q, got %q", StatusFailed, job.Status)
	}
}

func TestJob_AddError(t *testing.T) {
	job := &Job{ID: "err-test", UpdatedAt: time.Now()}
	job.AddError("page 3 unreadable")
	job.AddError("page 7 unreadable")

	snap := job.Snapshot()
	if len(snap.Progress.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(snap.Progress.Errors))
	}
	if snap.Progress.Errors[0] != "page 3 unreadable" {
		t.Errorf("expected first error %q, got %q", "page 3 unreadable", snap.Progress.Errors[0])
	}
}

func TestJob_SetCounts(t *testing.T) {
	job := &Job{ID: "counts-test", UpdatedAt: time.Now()}
	job.SetCounts(12, 5, 40)

	snap := job.Snapshot()
	if snap.Progress.Pages != 12 {
		t.Errorf("expected 12 pages, got %d", snap.Progress.Pages)
	}
	if snap.Progress.Sections != 5 {
		t.Errorf("expected 5 sections, got %d", snap.Progress.Sections)
	}
	if snap.Progress.Chunks != 40 {
		t.Errorf("expected 40 chunks, got %d", snap.Progress.Chunks)
	}
}

func TestJob_SnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: "nil-errs", UpdatedAt: time.Now()}
	snap := job.Snapshot()
	if snap.Progress.Errors == nil {
		t.Error("expected empty error slice in snapshot, got nil")
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "abc", UpdatedAt: time.Now()}
	store.Put(job)

	got := store.Get("abc")
	if got == nil {
		t.Fatal("expected job, got nil")
	}
	if got.ID != "abc" {
		t.Errorf("expected job ID %q, got %q", "abc", got.ID)
	}
	if store.Get("missing") != nil {
		t.Error("expected nil for unknown job ID")
	}
}

func TestJobStore_CleanupEvictsExpired(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)
	old := &Job{ID: "old", UpdatedAt: time.Now().Add(-time.Minute)}
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(old)
	store.Put(fresh)

	store.Cleanup()

	if store.Get("old") != nil {
		t.Error("expected expired job to be evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}
