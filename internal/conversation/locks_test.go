package conversation

import (
	"sync"
	"testing"
)

func TestLockTableMutualExclusion(t *testing.T) {
	table := newLockTable()

	var mu sync.Mutex
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := table.acquire("conv-1")
			defer release()
			mu.Lock()
			counter++
			mu.Unlock()
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Errorf("counter = %d, want 50", counter)
	}
	if got := table.size(); got != 0 {
		t.Errorf("size() after release = %d, want 0", got)
	}
}

func TestLockTableIndependentIDs(t *testing.T) {
	table := newLockTable()

	releaseA := table.acquire("a")
	done := make(chan struct{})
	go func() {
		releaseB := table.acquire("b")
		releaseB()
		close(done)
	}()
	<-done // "b" must not block on "a"
	releaseA()

	if got := table.size(); got != 0 {
		t.Errorf("size() = %d, want 0", got)
	}
}

func TestLockTableEvictsOnLastRelease(t *testing.T) {
	table := newLockTable()
	release := table.acquire("x")
	if got := table.size(); got != 1 {
		t.Fatalf("size() while held = %d, want 1", got)
	}
	release()
	if got := table.size(); got != 0 {
		t.Errorf("size() after release = %d, want 0", got)
	}
}
