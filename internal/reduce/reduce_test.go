package reduce

import (
	"errors"
	"testing"

	"github.com/bft-labs/frameblend/internal/domain"
)

var rgb = domain.Shape{Height: 2, Width: 3, Channels: 3}

func filled(shape domain.Shape, v uint8) domain.Frame {
	f := domain.NewFrame(shape)
	for i := range f.Pix {
		f.Pix[i] = v
	}
	return f
}

func ramp(shape domain.Shape, base uint8) domain.Frame {
	f := domain.NewFrame(shape)
	for i := range f.Pix {
		f.Pix[i] = base + uint8(i)
	}
	return f
}

func TestAverage(t *testing.T) {
	tests := []struct {
		name   string
		frames []domain.Frame
		want   domain.Frame
	}{
		{
			name:   "single frame is identity",
			frames: []domain.Frame{ramp(rgb, 5)},
			want:   ramp(rgb, 5),
		},
		{
			name:   "two frames",
			frames: []domain.Frame{filled(rgb, 10), filled(rgb, 20)},
			want:   filled(rgb, 15),
		},
		{
			name:   "truncates toward zero",
			frames: []domain.Frame{filled(rgb, 0), filled(rgb, 1)},
			want:   filled(rgb, 0),
		},
		{
			name:   "truncates 254/3",
			frames: []domain.Frame{filled(rgb, 254), filled(rgb, 0), filled(rgb, 0)},
			want:   filled(rgb, 84),
		},
		{
			name:   "no overflow at max samples",
			frames: []domain.Frame{filled(rgb, 255), filled(rgb, 255), filled(rgb, 255), filled(rgb, 255)},
			want:   filled(rgb, 255),
		},
		{
			name:   "divides by true count",
			frames: []domain.Frame{filled(rgb, 30), filled(rgb, 60), filled(rgb, 90)},
			want:   filled(rgb, 60),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Average(tt.frames)
			if err != nil {
				t.Fatalf("Average() error = %v", err)
			}
			if got.Shape != tt.frames[0].Shape {
				t.Errorf("Shape = %v, want %v", got.Shape, tt.frames[0].Shape)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Average() = %v, want %v", got.Pix, tt.want.Pix)
			}
		})
	}
}

func TestAverage_IdenticalFramesNoDrift(t *testing.T) {
	src := ramp(rgb, 200)
	for k := 1; k <= 64; k++ {
		frames := make([]domain.Frame, k)
		for i := range frames {
			frames[i] = src
		}
		got, err := Average(frames)
		if err != nil {
			t.Fatalf("k=%d: Average() error = %v", k, err)
		}
		if !got.Equal(src) {
			t.Fatalf("k=%d: average of identical frames drifted: %v", k, got.Pix)
		}
	}
}

func TestAverage_OrderInvariant(t *testing.T) {
	a, b, c := ramp(rgb, 3), ramp(rgb, 100), filled(rgb, 251)

	first, err := Average([]domain.Frame{a, b, c})
	if err != nil {
		t.Fatalf("Average() error = %v", err)
	}
	for _, perm := range [][]domain.Frame{{c, b, a}, {b, a, c}, {c, a, b}} {
		got, err := Average(perm)
		if err != nil {
			t.Fatalf("Average() error = %v", err)
		}
		if !got.Equal(first) {
			t.Errorf("permuted average = %v, want %v", got.Pix, first.Pix)
		}
	}
}

func TestAverage_DoesNotMutateInputs(t *testing.T) {
	a, b := filled(rgb, 10), filled(rgb, 250)
	if _, err := Average([]domain.Frame{a, b}); err != nil {
		t.Fatalf("Average() error = %v", err)
	}
	if !a.Equal(filled(rgb, 10)) || !b.Equal(filled(rgb, 250)) {
		t.Error("Average mutated its inputs")
	}
}

func TestAverage_Errors(t *testing.T) {
	gray := domain.Shape{Height: 2, Width: 3, Channels: 1}

	tests := []struct {
		name    string
		frames  []domain.Frame
		wantErr error
	}{
		{name: "empty", frames: nil, wantErr: domain.ErrEmptyInput},
		{name: "mismatched", frames: []domain.Frame{filled(rgb, 1), filled(gray, 1)}, wantErr: domain.ErrShapeMismatch},
		{name: "malformed", frames: []domain.Frame{{Shape: rgb, Pix: []uint8{1}}}, wantErr: domain.ErrMalformedFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Average(tt.frames)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Average() error = %v, want %v", err, tt.wantErr)
			}
			if got.Pix != nil {
				t.Error("Average() produced output alongside an error")
			}
		})
	}
}

func TestAverageBatch(t *testing.T) {
	batch, err := domain.NewBatch(filled(rgb, 0), filled(rgb, 100), filled(rgb, 200))
	if err != nil {
		t.Fatalf("NewBatch() error = %v", err)
	}
	got, err := AverageBatch(batch)
	if err != nil {
		t.Fatalf("AverageBatch() error = %v", err)
	}
	if !got.Equal(filled(rgb, 100)) {
		t.Errorf("AverageBatch() = %v, want all 100", got.Pix)
	}

	if _, err := AverageBatch(domain.Batch{}); !errors.Is(err, domain.ErrEmptyInput) {
		t.Errorf("AverageBatch(zero) error = %v, want ErrEmptyInput", err)
	}
}

func TestMean_WideAccumulator(t *testing.T) {
	frames := []domain.Frame{filled(rgb, 255), filled(rgb, 1)}
	dst := make([]uint8, rgb.Len())
	mean(dst, frames, make([]uint64, rgb.Len()))
	for i, v := range dst {
		if v != 128 {
			t.Fatalf("dst[%d] = %d, want 128", i, v)
		}
	}
}

func BenchmarkAverage(b *testing.B) {
	shape := domain.Shape{Height: 1080, Width: 1920, Channels: 3}
	frames := make([]domain.Frame, 10)
	for i := range frames {
		frames[i] = ramp(shape, uint8(i*25))
	}
	b.SetBytes(int64(shape.Len() * len(frames)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Average(frames); err != nil {
			b.Fatal(err)
		}
	}
}
