package window

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bft-labs/frameblend/internal/domain"
)

func TestNew_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		w, err := New[int](c)
		if !errors.Is(err, domain.ErrInvalidCapacity) {
			t.Errorf("New(%d) error = %v, want ErrInvalidCapacity", c, err)
		}
		if w != nil {
			t.Errorf("New(%d) returned a window alongside an error", c)
		}
	}
}

func TestWindow_Push(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		pushes   int
		want     []int
	}{
		{name: "empty", capacity: 3, pushes: 0, want: []int{}},
		{name: "partial", capacity: 3, pushes: 2, want: []int{0, 1}},
		{name: "exactly full", capacity: 3, pushes: 3, want: []int{0, 1, 2}},
		{name: "one eviction", capacity: 3, pushes: 4, want: []int{1, 2, 3}},
		{name: "many evictions", capacity: 3, pushes: 11, want: []int{8, 9, 10}},
		{name: "capacity one", capacity: 1, pushes: 5, want: []int{4}},
		{name: "wrap boundary", capacity: 4, pushes: 8, want: []int{4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := New[int](tt.capacity)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			for i := 0; i < tt.pushes; i++ {
				w.Push(i)
				if w.Len() > w.Cap() {
					t.Fatalf("after push %d: Len() = %d exceeds Cap() = %d", i, w.Len(), w.Cap())
				}
			}
			if got := w.Snapshot(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Snapshot() = %v, want %v", got, tt.want)
			}
			if w.Len() != len(tt.want) {
				t.Errorf("Len() = %d, want %d", w.Len(), len(tt.want))
			}
			if w.Cap() != tt.capacity {
				t.Errorf("Cap() = %d, want %d", w.Cap(), tt.capacity)
			}
		})
	}
}

func TestWindow_SnapshotIsStable(t *testing.T) {
	w, _ := New[int](3)
	for i := 0; i < 5; i++ {
		w.Push(i)
	}

	a := w.Snapshot()
	b := w.Snapshot()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("consecutive snapshots differ: %v vs %v", a, b)
	}

	w.Push(5)
	if !reflect.DeepEqual(a, []int{2, 3, 4}) {
		t.Errorf("earlier snapshot changed after push: %v", a)
	}
	if got := w.Snapshot(); !reflect.DeepEqual(got, []int{3, 4, 5}) {
		t.Errorf("Snapshot() after push = %v, want [3 4 5]", got)
	}
}

func TestWindow_HoldsFrameViews(t *testing.T) {
	shape := domain.Shape{Height: 1, Width: 1, Channels: 1}
	f := domain.NewFrame(shape)

	w, _ := New[domain.Frame](2)
	w.Push(f)
	f.Pix[0] = 77

	if got := w.Snapshot()[0].Pix[0]; got != 77 {
		t.Errorf("window copied pixels: got %d, want 77", got)
	}
}
