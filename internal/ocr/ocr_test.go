package ocr

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubRunner struct {
	calls   int
	outputs []string
	errs    []error
}

func (s *stubRunner) Run(_ context.Context, _ string, _ ...string) ([]byte, []byte, error) {
	i := s.calls
	s.calls++
	if i >= len(s.outputs) {
		i = len(s.outputs) - 1
	}
	return []byte(s.outputs[i]), nil, s.errs[i]
}

func newTestExtractor(r Runner) *Extractor {
	e := NewExtractor(Config{Timeout: time.Second}, nil)
	e.runner = r
	return e
}

func TestExtractRejectsUnknownExtension(t *testing.T) {
	e := newTestExtractor(&stubRunner{outputs: []string{""}, errs: []error{nil}})
	if _, err := e.Extract(context.Background(), "bill.pdf"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestExtractSucceedsFirstAttempt(t *testing.T) {
	r := &stubRunner{
		outputs: []string{"NET UNITS CONSUMED 250"},
		errs:    []error{nil},
	}
	e := newTestExtractor(r)

	res, err := e.Extract(context.Background(), "bill.jpg")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Text != "NET UNITS CONSUMED 250" {
		t.Errorf("Text = %q", res.Text)
	}
	if res.Retried {
		t.Error("Retried = true, want false")
	}
	if r.calls != 1 {
		t.Errorf("runner calls = %d, want 1", r.calls)
	}
}

func TestExtractRetriesOnce(t *testing.T) {
	r := &stubRunner{
		outputs: []string{"", "CURRENT DEMAND PAYABLE 1500"},
		errs:    []error{errors.New("boom"), nil},
	}
	e := newTestExtractor(r)

	res, err := e.Extract(context.Background(), "bill.png")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !res.Retried {
		t.Error("Retried = false, want true")
	}
	if r.calls != 2 {
		t.Errorf("runner calls = %d, want 2", r.calls)
	}
}

func TestExtractFailsAfterSecondAttempt(t *testing.T) {
	r := &stubRunner{
		outputs: []string{"", ""},
		errs:    []error{errors.New("boom"), errors.New("boom again")},
	}
	e := newTestExtractor(r)

	_, err := e.Extract(context.Background(), "bill.jpeg")
	if err == nil {
		t.Fatal("expected error after two failed attempts")
	}
	if r.calls != 2 {
		t.Errorf("runner calls = %d, want exactly 2", r.calls)
	}
}

func TestHeuristicConfidence(t *testing.T) {
	empty := heuristicConfidence("")
	rich := heuristicConfidence("BILL DATE: 01/07/2025 CURRENT DEMAND PAYABLE ₹1500.00 NET UNITS CONSUMED 250 kWh " +
		"SERVICE NUMBER 1234567890 ARREARS 0.00 ENERGY CHARGES 1320.00 FIXED CHARGES 50")
	if empty >= rich {
		t.Fatalf("confidence(empty)=%v should be below confidence(rich)=%v", empty, rich)
	}
}
