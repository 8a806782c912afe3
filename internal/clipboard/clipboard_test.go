package clipboard

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSystemWritePassesText(t *testing.T) {
	var got string
	s := &System{writeAll: func(text string) error {
		got = text
		return nil
	}}

	if err := s.Write(context.Background(), "#FF6347"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got != "#FF6347" {
		t.Fatalf("expected #FF6347, got %q", got)
	}
}

func TestSystemWriteUnsupported(t *testing.T) {
	s := &System{writeAll: func(string) error { return nil }, unsupported: true}
	if s.Available() {
		t.Fatal("unsupported clipboard reported available")
	}
	if err := s.Write(context.Background(), "x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	var nilSystem *System
	if err := nilSystem.Write(context.Background(), "x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable from nil system, got %v", err)
	}
}

func TestSystemWrapsHelperError(t *testing.T) {
	helperErr := errors.New("exit status 1")
	s := &System{writeAll: func(string) error { return helperErr }}

	err := s.Write(context.Background(), "x")
	if !errors.Is(err, helperErr) {
		t.Fatalf("expected wrapped helper error, got %v", err)
	}
}

func TestSystemWriteHonorsContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	s := &System{writeAll: func(string) error {
		<-release
		return nil
	}}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := s.Write(ctx, "x"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
}

func TestMemory(t *testing.T) {
	var m Memory
	if _, ok := m.Last(); ok {
		t.Fatal("empty memory clipboard should have no last write")
	}
	_ = m.Write(context.Background(), "RED")
	_ = m.Write(context.Background(), "#FF0000")

	if last, _ := m.Last(); last != "#FF0000" {
		t.Fatalf("expected last write #FF0000, got %q", last)
	}
	if got := m.Writes(); len(got) != 2 || got[0] != "RED" {
		t.Fatalf("unexpected writes %v", got)
	}

	m.Err = errors.New("denied")
	if err := m.Write(context.Background(), "x"); err == nil {
		t.Fatal("expected configured error")
	}
	if len(m.Writes()) != 2 {
		t.Fatal("failed write should not be recorded")
	}
}
