package pool

import (
	"sync"
	"testing"
	"time"
)

func makeQueued(n int) []*queuedTask {
	b := newBatch(n)
	tasks := make([]*queuedTask, n)
	for i := range tasks {
		tasks[i] = &queuedTask{index: i, task: func() error { return nil }, batch: b}
	}
	return tasks
}

func TestTaskQueue_FIFO(t *testing.T) {
	q := newTaskQueue()
	if err := q.pushAll(makeQueued(200)); err != nil {
		t.Fatalf("pushAll failed: %v", err)
	}

	for want := range 200 {
		got, ok := q.pop()
		if !ok {
			t.Fatalf("pop %d: queue reported closed", want)
		}
		if got.index != want {
			t.Fatalf("pop %d returned index %d", want, got.index)
		}
	}

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
}

func TestTaskQueue_PopBlocksUntilPush(t *testing.T) {
	q := newTaskQueue()

	got := make(chan int, 1)
	go func() {
		qt, ok := q.pop()
		if ok {
			got <- qt.index
		}
	}()

	select {
	case <-got:
		t.Fatal("pop returned on an empty queue")
	case <-time.After(20 * time.Millisecond):
	}

	if err := q.pushAll(makeQueued(1)); err != nil {
		t.Fatalf("pushAll failed: %v", err)
	}

	select {
	case idx := <-got:
		if idx != 0 {
			t.Errorf("popped index %d, want 0", idx)
		}
	case <-time.After(time.Second):
		t.Fatal("pop was not woken by pushAll")
	}
}

func TestTaskQueue_Close(t *testing.T) {
	q := newTaskQueue()

	const waiters = 4
	var wg sync.WaitGroup
	for range waiters {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := q.pop(); ok {
				t.Error("pop returned a task from an empty closed queue")
			}
		}()
	}

	time.Sleep(10 * time.Millisecond)
	if rest := q.close(); len(rest) != 0 {
		t.Errorf("close returned %d tasks, want 0", len(rest))
	}
	wg.Wait()

	if err := q.pushAll(makeQueued(1)); err != ErrPoolClosed {
		t.Errorf("pushAll after close = %v, want ErrPoolClosed", err)
	}
	if rest := q.close(); rest != nil {
		t.Errorf("second close returned %v, want nil", rest)
	}
}

func TestTaskQueue_CloseReturnsUnclaimed(t *testing.T) {
	q := newTaskQueue()
	_ = q.pushAll(makeQueued(5))
	_, _ = q.pop()

	rest := q.close()
	if len(rest) != 4 {
		t.Fatalf("close returned %d tasks, want 4", len(rest))
	}
	for i, task := range rest {
		if task.index != i+1 {
			t.Errorf("rest[%d].index = %d, want %d", i, task.index, i+1)
		}
	}
}

func TestTaskQueue_Compaction(t *testing.T) {
	q := newTaskQueue()
	_ = q.pushAll(makeQueued(300))

	for range 200 {
		_, _ = q.pop()
	}
	if q.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", q.Len())
	}

	next, _ := q.pop()
	if next.index != 200 {
		t.Errorf("after compaction popped index %d, want 200", next.index)
	}
}
