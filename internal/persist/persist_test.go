package persist

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/fitlife/internal/storage"
	"github.com/garrettladley/fitlife/internal/xslog"
)

type record struct {
	ExerciseID string   `json:"exerciseId"`
	Duration   int64    `json:"duration"`
	Tags       []string `json:"tags,omitempty"`
}

func newTestStore(kv storage.KV) (*Store, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(kv, xslog.NewLogger(&buf, xslog.Default)), &buf
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("slice of structs", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(storage.NewMemoryKV())
		want := []record{{ExerciseID: "ex1", Duration: 1800}, {ExerciseID: "ex2", Duration: 0, Tags: []string{"a"}}}

		s.Save(ctx, "log", want)
		got, ok := Load[[]record](ctx, s, "log")
		if !ok {
			t.Fatal("Load() ok = false")
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Load() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nested map", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(storage.NewMemoryKV())
		want := map[string]map[string]float64{"2026-10-18": {"steps": 6000, "water": 2.5}}

		s.Save(ctx, "goals", want)
		got, ok := Load[map[string]map[string]float64](ctx, s, "goals")
		if !ok {
			t.Fatal("Load() ok = false")
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Load() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("bool", func(t *testing.T) {
		t.Parallel()
		s, _ := newTestStore(storage.NewMemoryKV())

		s.Save(ctx, "darkMode", true)
		got, ok := Load[bool](ctx, s, "darkMode")
		if !ok || !got {
			t.Errorf("Load() = (%v, %v), want (true, true)", got, ok)
		}
	})
}

func TestLoad_UnsetKey(t *testing.T) {
	t.Parallel()

	s, logs := newTestStore(storage.NewMemoryKV())
	got, ok := Load[[]record](context.Background(), s, "missing")
	if ok {
		t.Error("Load() ok = true, want false")
	}
	if got != nil {
		t.Errorf("Load() = %v, want nil", got)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected log output for missing key: %s", logs.String())
	}
}

func TestLoad_CorruptValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryKV()
	if err := kv.Set(ctx, "log", "{not json"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	s, logs := newTestStore(kv)

	got, ok := Load[[]record](ctx, s, "log")
	if ok {
		t.Error("Load() ok = true, want false")
	}
	if got != nil {
		t.Errorf("Load() = %v, want nil", got)
	}
	if !strings.Contains(logs.String(), "error reading from store") {
		t.Errorf("expected read failure to be logged, got: %s", logs.String())
	}

	// a type mismatch is just as unreadable as malformed text
	if err := kv.Set(ctx, "log", `{"exerciseId":"ex1"}`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok := Load[[]record](ctx, s, "log"); ok {
		t.Error("Load() of object into slice ok = true, want false")
	}
}

func TestFetch_ReportsReadError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryKV()
	_ = kv.Set(ctx, "k", "[")
	s, _ := newTestStore(kv)

	var dst []record
	_, err := s.fetch(ctx, "k", &dst)
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("fetch() error = %v, want *ReadError", err)
	}
	if readErr.Key != "k" {
		t.Errorf("ReadError.Key = %q, want %q", readErr.Key, "k")
	}
}

func TestSave_QuotaExceededIsSwallowed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, logs := newTestStore(storage.NewMemoryKV(storage.WithQuota(16)))

	s.Save(ctx, "log", []record{{ExerciseID: "a-rather-long-exercise-id", Duration: 1}})

	if _, ok := Load[[]record](ctx, s, "log"); ok {
		t.Error("rejected write should not be readable")
	}
	if !strings.Contains(logs.String(), "error saving to store") {
		t.Errorf("expected write failure to be logged, got: %s", logs.String())
	}

	err := s.put(ctx, "log", []record{{ExerciseID: "a-rather-long-exercise-id"}})
	var writeErr *WriteError
	if !errors.As(err, &writeErr) {
		t.Fatalf("put() error = %v, want *WriteError", err)
	}
	if !errors.Is(err, storage.ErrQuotaExceeded) {
		t.Errorf("put() error = %v, want wrapped ErrQuotaExceeded", err)
	}
}

func TestSave_UnserializableIsSwallowed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	kv := storage.NewMemoryKV()
	s, logs := newTestStore(kv)

	s.Save(ctx, "bad", map[string]any{"ch": make(chan int)})

	if _, ok, _ := kv.Get(ctx, "bad"); ok {
		t.Error("unserializable value should not be written")
	}
	if !strings.Contains(logs.String(), `"key":"bad"`) {
		t.Errorf("expected failure log with key, got: %s", logs.String())
	}
}

type failingKV struct {
	storage.KV
	err error
}

func (f failingKV) Get(context.Context, string) (string, bool, error) { return "", false, f.err }

func TestLoad_StoreErrorLooksAbsent(t *testing.T) {
	t.Parallel()

	s, logs := newTestStore(failingKV{KV: storage.NewMemoryKV(), err: errors.New("disk on fire")})

	if _, ok := Load[bool](context.Background(), s, "darkMode"); ok {
		t.Error("Load() ok = true, want false")
	}
	if !strings.Contains(logs.String(), "disk on fire") {
		t.Errorf("expected store error in log, got: %s", logs.String())
	}
}
