package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/core"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
	"github.com/mygreenhome/greenhome-tracker/internal/ocr"
)

// gateOCR signals when an extraction begins and holds it until released, so
// tests can pin a worker on a job.
type gateOCR struct {
	entered chan struct{}
	release chan struct{}
}

func (g *gateOCR) Extract(ctx context.Context, _ string) (ocr.Result, error) {
	g.entered <- struct{}{}
	select {
	case <-g.release:
	case <-ctx.Done():
	}
	return ocr.Result{}, errors.New("scan aborted")
}

type nopJobs struct{}

func (nopJobs) Start(_ context.Context, userID uuid.UUID, filename string) (*entity.AnalysisJob, error) {
	return &entity.AnalysisJob{ID: uuid.New(), UserID: userID, Filename: filename}, nil
}
func (nopJobs) FinishOCR(context.Context, uuid.UUID, string) error  { return nil }
func (nopJobs) FinishSuccess(context.Context, uuid.UUID, uuid.UUID, []byte) error {
	return nil
}
func (nopJobs) FinishFailure(context.Context, uuid.UUID, string) error { return nil }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func tempImage(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("img"), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestEnqueueAfterShutdownRefuses(t *testing.T) {
	gate := &gateOCR{entered: make(chan struct{}, 4), release: make(chan struct{})}
	close(gate.release)
	proc := core.NewProcessor(quietLogger(), gate, nil, nil, nopJobs{})
	q := NewAnalysisQueue(proc, quietLogger(), WithWorkers(1), WithQueueSize(1))
	q.Shutdown(context.Background())

	path := tempImage(t, "late.jpg")
	err := q.Enqueue(context.Background(), Job{JobID: uuid.New(), UserID: uuid.New(), ImagePath: path})
	if !errors.Is(err, common.ErrServiceUnavailable) {
		t.Fatalf("Enqueue after shutdown = %v, want ErrServiceUnavailable", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("image %s still exists after refusal", path)
	}
}

func TestEnqueueFullQueueHonorsContext(t *testing.T) {
	gate := &gateOCR{entered: make(chan struct{}, 4), release: make(chan struct{})}
	proc := core.NewProcessor(quietLogger(), gate, nil, nil, nopJobs{})
	q := NewAnalysisQueue(proc, quietLogger(), WithWorkers(1), WithQueueSize(1))

	pathA := tempImage(t, "a.jpg")
	pathB := tempImage(t, "b.jpg")
	pathC := tempImage(t, "c.jpg")

	if err := q.Enqueue(context.Background(), Job{JobID: uuid.New(), UserID: uuid.New(), ImagePath: pathA}); err != nil {
		t.Fatalf("enqueue a: %v", err)
	}
	<-gate.entered // the single worker is now pinned on a.jpg

	if err := q.Enqueue(context.Background(), Job{JobID: uuid.New(), UserID: uuid.New(), ImagePath: pathB}); err != nil {
		t.Fatalf("enqueue b: %v", err)
	}

	// Buffer full, worker busy: the send must give up when the context does
	// instead of stalling the queue.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, Job{JobID: uuid.New(), UserID: uuid.New(), ImagePath: pathC})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("enqueue c = %v, want context.DeadlineExceeded", err)
	}
	if _, statErr := os.Stat(pathC); !os.IsNotExist(statErr) {
		t.Errorf("image %s still exists after refusal", pathC)
	}

	close(gate.release)
	q.Shutdown(context.Background())

	for _, path := range []string{pathA, pathB} {
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Errorf("image %s not cleaned up by worker", path)
		}
	}
}
