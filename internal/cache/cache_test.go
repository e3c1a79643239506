package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](0)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache returned ok")
	}
	c.Set("a", 1)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v, want 1, true", v, ok)
	}
	if !c.Delete("a") {
		t.Error("Delete(a) = false")
	}
	if c.Delete("a") {
		t.Error("second Delete(a) = true")
	}
}

func TestCacheSoftLimitEvictsOldest(t *testing.T) {
	c := New[int, int](4)
	for i := 0; i < 4; i++ {
		c.Set(i, i)
	}
	// Touch 0 so it is the most recently used.
	c.Get(0)
	c.Set(4, 4)

	if c.Len() > 4 {
		t.Fatalf("Len = %d, want <= 4", c.Len())
	}
	if _, ok := c.Get(0); !ok {
		t.Error("recently used entry was evicted")
	}
	if _, ok := c.Get(1); ok {
		t.Error("oldest entry was not evicted")
	}
}

func TestCacheGetOrLoad(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	load := func() (int, error) {
		calls++
		return 7, nil
	}
	for i := 0; i < 3; i++ {
		v, err := c.GetOrLoad("k", load)
		if err != nil || v != 7 {
			t.Fatalf("GetOrLoad = %v, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
}

func TestCacheGetOrLoadErrorNotCached(t *testing.T) {
	c := New[string, int](0)
	boom := errors.New("boom")
	if _, err := c.GetOrLoad("k", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Error("failed load was cached")
	}
	v, err := c.GetOrLoad("k", func() (int, error) { return 3, nil })
	if err != nil || v != 3 {
		t.Errorf("retry = %v, %v", v, err)
	}
}

func TestCacheGetOrLoadSingleFlight(t *testing.T) {
	c := New[string, int](0)
	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]int, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, _ := c.GetOrLoad("same", func() (int, error) {
				calls.Add(1)
				<-release
				return 42, nil
			})
			results[i] = v
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("loader ran %d times, want 1", n)
	}
	for i, v := range results {
		if v != 42 {
			t.Errorf("results[%d] = %d, want 42", i, v)
		}
	}
}

func TestCacheGetOrLoadDistinctStructKeys(t *testing.T) {
	type key struct{ family, style string }
	a, b := key{"x y", "z"}, key{"x", "y z"}
	c := New[key, string](0)

	release := make(chan struct{})
	aStarted := make(chan struct{})
	aDone := make(chan string)
	go func() {
		v, _ := c.GetOrLoad(a, func() (string, error) {
			close(aStarted)
			<-release
			return "a", nil
		})
		aDone <- v
	}()
	<-aStarted

	bDone := make(chan string)
	go func() {
		v, _ := c.GetOrLoad(b, func() (string, error) { return "b", nil })
		bDone <- v
	}()

	select {
	case v := <-bDone:
		if v != "b" {
			t.Errorf("GetOrLoad(b) = %q, want b", v)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("load of b waited for a")
	}
	close(release)
	if v := <-aDone; v != "a" {
		t.Errorf("GetOrLoad(a) = %q, want a", v)
	}
}

func TestCacheClearResetsStats(t *testing.T) {
	c := New[string, int](0)
	c.Set("a", 1)
	c.Get("a")
	c.Get("b")
	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.HitRate != 0.5 {
		t.Errorf("Stats = %+v", s)
	}
	c.Clear()
	if s := c.Stats(); s.Len != 0 || s.Hits != 0 {
		t.Errorf("Stats after Clear = %+v", s)
	}
}
