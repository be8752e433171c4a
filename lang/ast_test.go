package lang

import "testing"

func TestRangeContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    Range
		in   []uint64
		out  []uint64
	}{
		{
			name: "contiguous",
			r:    Range{Start: 4, End: 8},
			in:   []uint64{4, 5, 6, 7},
			out:  []uint64{0, 3, 8, 9},
		},
		{
			name: "strided",
			r:    Range{Start: 0, End: 16, Stride: 4},
			in:   []uint64{0, 4, 8, 12},
			out:  []uint64{1, 2, 14, 16},
		},
		{
			name: "stride offset from start",
			r:    Range{Start: 3, End: 12, Stride: 3},
			in:   []uint64{3, 6, 9},
			out:  []uint64{0, 4, 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, addr := range tt.in {
				if !tt.r.Contains(addr) {
					t.Errorf("Contains(%d) = false, want true", addr)
				}
			}

			for _, addr := range tt.out {
				if tt.r.Contains(addr) {
					t.Errorf("Contains(%d) = true, want false", addr)
				}
			}
		})
	}
}

func TestRangeCountAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		r     Range
		count uint64
		addrs []uint64
	}{
		{
			name:  "contiguous",
			r:     Range{Start: 2, End: 6},
			count: 4,
			addrs: []uint64{2, 3, 4, 5},
		},
		{
			name:  "strided even",
			r:     Range{Start: 0, End: 16, Stride: 4},
			count: 4,
			addrs: []uint64{0, 4, 8, 12},
		},
		{
			name:  "strided uneven tail",
			r:     Range{Start: 0, End: 10, Stride: 4},
			count: 3,
			addrs: []uint64{0, 4, 8},
		},
		{
			name:  "empty",
			r:     Range{Start: 5, End: 5},
			count: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.r.Count(); got != tt.count {
				t.Errorf("Count() = %d, want %d", got, tt.count)
			}

			for i, want := range tt.addrs {
				got, ok := tt.r.At(uint64(i))
				if !ok || got != want {
					t.Errorf("At(%d) = %d, %v, want %d, true", i, got, ok, want)
				}
			}

			if _, ok := tt.r.At(tt.count); ok {
				t.Errorf("At(%d) = ok, want out of bounds", tt.count)
			}
		})
	}
}

func TestPartitionIndexing(t *testing.T) {
	t.Parallel()

	p := Partition{
		{Start: 0, End: 4},
		{Start: 8, End: 16, Stride: 4},
		{Start: 100, End: 102},
	}

	if got := p.Count(); got != 8 {
		t.Fatalf("Count() = %d, want 8", got)
	}

	// At and IndexOf are inverses over the claimed addresses.
	for idx := uint64(0); idx < p.Count(); idx++ {
		addr, ok := p.At(idx)
		if !ok {
			t.Fatalf("At(%d) out of bounds", idx)
		}

		back, ok := p.IndexOf(addr)
		if !ok || back != idx {
			t.Errorf("IndexOf(At(%d)=%d) = %d, %v", idx, addr, back, ok)
		}
	}

	if _, ok := p.At(8); ok {
		t.Error("At(8) = ok, want out of bounds")
	}

	if _, ok := p.IndexOf(50); ok {
		t.Error("IndexOf(50) = ok, want not claimed")
	}
}

func TestMaskFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width uint
		want  uint64
	}{
		{0, ^uint64(0)},
		{1, 1},
		{8, 255},
		{16, 65535},
		{63, (uint64(1) << 63) - 1},
		{64, ^uint64(0)},
	}

	for _, tt := range tests {
		if got := maskFor(tt.width); got != tt.want {
			t.Errorf("maskFor(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}
