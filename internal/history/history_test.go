package history_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/zephyrtronium/smartcalc/internal/history"
)

func open(t *testing.T, path string) *history.Store {
	t.Helper()
	s, err := history.Open(path)
	if err != nil {
		t.Fatalf("couldn't open history: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordRecent(t *testing.T) {
	ctx := context.Background()
	s := open(t, filepath.Join(t.TempDir(), "history.db"))
	x := 3.0
	entries := []history.Entry{
		{Expr: "1+2", Result: 3, Code: "Success", CreatedAt: 100},
		{Expr: "x^2", X: &x, Result: 9, Code: "Success", CreatedAt: 200},
		{Expr: "(1", Code: "BracesNotMatching", CreatedAt: 200},
	}
	for _, e := range entries {
		if err := s.Record(ctx, e); err != nil {
			t.Fatalf("couldn't record %q: %v", e.Expr, err)
		}
	}
	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("couldn't read history: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("wrong number of entries: want 2, got %d", len(got))
	}
	if got[0].Expr != "(1" || got[0].Code != "BracesNotMatching" {
		t.Errorf("wrong newest entry: %+v", got[0])
	}
	if got[1].Expr != "x^2" || got[1].X == nil || *got[1].X != 3 || got[1].Result != 9 {
		t.Errorf("wrong second entry: %+v", got[1])
	}
	all, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("couldn't read history: %v", err)
	}
	if len(all) != 3 || all[2].Expr != "1+2" || all[2].X != nil {
		t.Errorf("wrong full history: %+v", all)
	}
}

func TestRecordTime(t *testing.T) {
	ctx := context.Background()
	s := open(t, filepath.Join(t.TempDir(), "history.db"))
	if err := s.Record(ctx, history.Entry{Expr: "1", Result: 1, Code: "Success"}); err != nil {
		t.Fatalf("couldn't record: %v", err)
	}
	got, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("couldn't read history: %v", err)
	}
	if len(got) != 1 || got[0].CreatedAt == 0 || got[0].ID == 0 {
		t.Errorf("creation time or id not set: %+v", got)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")
	s := open(t, path)
	for _, expr := range []string{"1", "2"} {
		if err := s.Record(ctx, history.Entry{Expr: expr, Code: "Success"}); err != nil {
			t.Fatalf("couldn't record %q: %v", expr, err)
		}
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("couldn't clear: %v", err)
	}
	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("couldn't read history: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("cleared history still has entries: %+v", got)
	}
	if err := s.Record(ctx, history.Entry{Expr: "3", Code: "Success"}); err != nil {
		t.Fatalf("couldn't record after clear: %v", err)
	}
	got, err = s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("couldn't read history: %v", err)
	}
	if len(got) != 1 || got[0].Expr != "3" {
		t.Errorf("wrong history after clear: %+v", got)
	}
}

func TestReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := history.Open(path)
	if err != nil {
		t.Fatalf("couldn't open history: %v", err)
	}
	if err := s.Record(ctx, history.Entry{Expr: "2*3", Result: 6, Code: "Success"}); err != nil {
		t.Fatalf("couldn't record: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("couldn't close: %v", err)
	}
	s = open(t, path)
	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("couldn't read history: %v", err)
	}
	if len(got) != 1 || got[0].Expr != "2*3" || got[0].Result != 6 {
		t.Errorf("wrong history after reopening: %+v", got)
	}
}
