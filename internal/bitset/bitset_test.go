package bitset

import (
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		n     int
		words int
	}{
		{0, 0},
		{1, 1},
		{64, 1},
		{65, 2},
		{4096, 64},
	}
	for _, tt := range tests {
		b := New(tt.n)
		if b.Len() != tt.n {
			t.Errorf("New(%d).Len() = %d", tt.n, b.Len())
		}
		if len(b.words) != tt.words {
			t.Errorf("New(%d) words = %d, want %d", tt.n, len(b.words), tt.words)
		}
	}
	if New(-1) != nil {
		t.Error("New(-1) should return nil")
	}
}

func TestTestAndSet(t *testing.T) {
	b := New(130)

	for _, i := range []int{0, 63, 64, 129} {
		if b.TestAndSet(i) {
			t.Errorf("TestAndSet(%d) first call = true, want false", i)
		}
		if !b.TestAndSet(i) {
			t.Errorf("TestAndSet(%d) second call = false, want true", i)
		}
	}
	if got := b.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestOutOfRange(t *testing.T) {
	b := New(10)
	for _, i := range []int{-1, 10, 1000} {
		if b.TestAndSet(i) {
			t.Errorf("TestAndSet(%d) = true", i)
		}
	}
	if b.Count() != 0 {
		t.Errorf("out-of-range writes changed Count() to %d", b.Count())
	}
}

func TestFullAndFirstClear(t *testing.T) {
	b := New(70)
	if got := b.FirstClear(); got != 0 {
		t.Errorf("FirstClear() on empty = %d, want 0", got)
	}

	for i := range 70 {
		if i != 66 {
			b.TestAndSet(i)
		}
	}
	if b.Full() {
		t.Error("Full() = true with bit 66 clear")
	}
	if got := b.FirstClear(); got != 66 {
		t.Errorf("FirstClear() = %d, want 66", got)
	}

	b.TestAndSet(66)
	if !b.Full() {
		t.Error("Full() = false with every bit set")
	}
	if got := b.FirstClear(); got != -1 {
		t.Errorf("FirstClear() on full = %d, want -1", got)
	}
}

func TestConcurrentTestAndSet(t *testing.T) {
	const n = 10000
	b := New(n)

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := 0
			for i := range n {
				if !b.TestAndSet(i) {
					local++
				}
			}
			mu.Lock()
			winners += local
			mu.Unlock()
		}()
	}
	wg.Wait()

	if winners != n {
		t.Errorf("first-setters = %d, want exactly %d", winners, n)
	}
	if !b.Full() {
		t.Error("bitset not full after concurrent marking")
	}
}
