package datasource

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestRequestCache_Get_ConcurrentCallsRunOnce(t *testing.T) {
	t.Parallel()

	cache := NewRequestCache[string, int](0)

	var calls atomic.Int32
	release := make(chan struct{})

	fn := func() (int, error) {
		calls.Add(1)
		<-release

		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 10)

	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()

			v, err := cache.Get("key", fn)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			results[i] = v
		}()
	}

	// give the goroutines a chance to queue up behind the first call
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("expected fn to be called once, got %d", got)
	}

	for i, v := range results {
		if v != 42 {
			t.Errorf("result %d = %d, want 42", i, v)
		}
	}
}

func TestRequestCache_Get_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	cache := NewRequestCache[string, int](0)
	errBoom := errors.New("boom")

	if _, err := cache.Get("key", func() (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("expected errBoom, got %v", err)
	}

	if cache.Len() != 0 {
		t.Errorf("expected the error to not be cached")
	}

	v, err := cache.Get("key", func() (int, error) { return 7, nil })
	if err != nil || v != 7 {
		t.Errorf("Get() = %d, %v, want 7, nil", v, err)
	}
}

func TestRequestCache_Get_Expiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	cache := NewRequestCache[string, int](time.Hour)
	cache.now = func() time.Time { return now }

	calls := 0
	fn := func() (int, error) {
		calls++

		return calls, nil
	}

	first, _ := cache.Get("key", fn)

	now = now.Add(30 * time.Minute)
	second, _ := cache.Get("key", fn)

	now = now.Add(time.Hour)
	third, _ := cache.Get("key", fn)

	if first != 1 || second != 1 || third != 2 {
		t.Errorf("got %d, %d, %d, want 1, 1, 2", first, second, third)
	}
}
