package appctx

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// recordingAction appends "execute:<name>" and "rollback:<name>" to a shared
// log and fails Execute with execErr when set.
type recordingAction struct {
	name        string
	execErr     error
	rollbackErr error
	log         *[]string
}

func (a *recordingAction) Execute(context.Context) error {
	if a.execErr != nil {
		return a.execErr
	}
	*a.log = append(*a.log, "execute:"+a.name)
	return nil
}

func (a *recordingAction) Rollback(context.Context) error {
	*a.log = append(*a.log, "rollback:"+a.name)
	return a.rollbackErr
}

func (a *recordingAction) Description() string { return a.name }

func TestGetOrFetch_FetchesOnce(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	var calls int
	fetch := func(context.Context) (string, error) {
		calls++
		return "INSTANT", nil
	}

	for range 3 {
		got, err := GetOrFetch(rc, "reward", fetch)
		if err != nil {
			t.Fatalf("GetOrFetch() error = %v", err)
		}
		if got != "INSTANT" {
			t.Errorf("GetOrFetch() = %q, want INSTANT", got)
		}
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
}

func TestGetOrFetch_CachesErrors(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	boom := errors.New("downstream failed")
	var calls int
	fetch := func(context.Context) (int, error) {
		calls++
		return 0, boom
	}

	for range 2 {
		if _, err := GetOrFetch(rc, "profile", fetch); !errors.Is(err, boom) {
			t.Fatalf("GetOrFetch() error = %v, want %v", err, boom)
		}
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	_, _ = GetOrFetch(rc, "k", func(context.Context) (string, error) { return "s", nil })

	_, err := GetOrFetch(rc, "k", func(context.Context) (int, error) { return 1, nil })
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("GetOrFetch() error = %v, want ErrTypeMismatch", err)
	}
}

func TestGetOrFetch_ConcurrentCallersShareFetch(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	release := make(chan struct{})
	var calls atomic.Int32
	fetch := func(context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	var wg sync.WaitGroup
	results := make([]string, 5)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = GetOrFetch(rc, "summary", fetch)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Errorf("fetch calls = %d, want 1", got)
	}
	for i, r := range results {
		if r != "shared" {
			t.Errorf("results[%d] = %q, want shared", i, r)
		}
	}
}

func TestGetOrFetch_PanicReleasesWaiters(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	started := make(chan struct{})
	release := make(chan struct{})

	recovered := make(chan any, 1)
	go func() {
		defer func() { recovered <- recover() }()
		_, _ = GetOrFetch(rc, "reward", func(context.Context) (int, error) {
			close(started)
			<-release
			panic("decode failed")
		})
	}()
	<-started

	waited := make(chan error, 1)
	go func() {
		_, err := GetOrFetch(rc, "reward", func(context.Context) (int, error) { return 2, nil })
		waited <- err
	}()
	close(release)

	select {
	case r := <-recovered:
		if r != "decode failed" {
			t.Errorf("recovered = %v, want the fetch panic", r)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("fetching caller did not return")
	}
	select {
	case err := <-waited:
		if !errors.Is(err, ErrFetchPanicked) {
			t.Errorf("waiter error = %v, want ErrFetchPanicked", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("waiter still blocked after the fetch panicked")
	}

	if _, err := GetOrFetch(rc, "reward", func(context.Context) (int, error) { return 3, nil }); !errors.Is(err, ErrFetchPanicked) {
		t.Errorf("later GetOrFetch() error = %v, want ErrFetchPanicked", err)
	}
}

func TestGetOrFetch_WaiterHonoursContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	rc := New(ctx)
	release := make(chan struct{})
	defer close(release)

	go func() {
		_, _ = GetOrFetch(rc, "slow", func(context.Context) (int, error) {
			<-release
			return 1, nil
		})
	}()
	time.Sleep(10 * time.Millisecond)
	cancel()

	if _, err := GetOrFetch(rc, "slow", func(context.Context) (int, error) { return 2, nil }); !errors.Is(err, context.Canceled) {
		t.Errorf("GetOrFetch() error = %v, want context.Canceled", err)
	}
}

func TestStage_ReadYourWrites(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	var log []string
	_, _ = GetOrFetch(rc, "reward", func(context.Context) (string, error) { return "old", nil })

	if err := rc.Stage("reward", "new", &recordingAction{name: "save", log: &log}); err != nil {
		t.Fatalf("Stage() error = %v", err)
	}

	got, err := GetOrFetch(rc, "reward", func(context.Context) (string, error) {
		t.Fatal("fetch called for a staged key")
		return "", nil
	})
	if err != nil || got != "new" {
		t.Errorf("GetOrFetch() = %q, %v, want new, nil", got, err)
	}
	if rc.Staged() != 1 {
		t.Errorf("Staged() = %d, want 1", rc.Staged())
	}
	if len(log) != 0 {
		t.Errorf("actions ran before Commit: %v", log)
	}
}

func TestStage_Errors(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	if err := rc.Stage("k", 1, nil); !errors.Is(err, ErrNilAction) {
		t.Errorf("Stage(nil) error = %v, want ErrNilAction", err)
	}

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	var log []string
	if err := rc.Stage("k", 1, &recordingAction{name: "late", log: &log}); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("Stage() after Commit error = %v, want ErrAlreadyCommitted", err)
	}
	if err := rc.Commit(context.Background()); !errors.Is(err, ErrAlreadyCommitted) {
		t.Errorf("second Commit() error = %v, want ErrAlreadyCommitted", err)
	}
}

func TestCommit_RunsInOrder(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	var log []string
	_ = rc.Stage("a", 1, &recordingAction{name: "a", log: &log})
	_ = rc.Stage("b", 2, &recordingAction{name: "b", log: &log})

	if err := rc.Commit(context.Background()); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	want := []string{"execute:a", "execute:b"}
	if len(log) != len(want) || log[0] != want[0] || log[1] != want[1] {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestCommit_FailureRollsBackInReverse(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	var log []string
	boom := errors.New("put failed")
	_ = rc.Stage("a", 1, &recordingAction{name: "a", log: &log, rollbackErr: errors.New("ignored")})
	_ = rc.Stage("b", 2, &recordingAction{name: "b", log: &log})
	_ = rc.Stage("c", 3, &recordingAction{name: "c", log: &log, execErr: boom})

	err := rc.Commit(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("Commit() error = %v, want %v", err, boom)
	}
	if want := "c: put failed"; err.Error() != want {
		t.Errorf("Commit() error = %q, want %q", err.Error(), want)
	}

	want := []string{"execute:a", "execute:b", "rollback:b", "rollback:a"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}

func TestExecute_RunsImmediately(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	var log []string
	if err := rc.Execute(&recordingAction{name: "now", log: &log}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(log) != 1 || rc.Staged() != 0 {
		t.Errorf("log = %v, Staged() = %d, want one execution and nothing staged", log, rc.Staged())
	}
	if err := rc.Execute(nil); !errors.Is(err, ErrNilAction) {
		t.Errorf("Execute(nil) error = %v, want ErrNilAction", err)
	}
}

func TestFromContextOrNew(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if FromContext(ctx) != nil {
		t.Fatal("FromContext() on a bare context != nil")
	}

	rc := New(ctx)
	stored := WithRequestContext(ctx, rc)
	if got := FromContextOrNew(stored); got != rc {
		t.Errorf("FromContextOrNew() = %p, want stored %p", got, rc)
	}
	if got := FromContextOrNew(ctx); got == nil || got == rc {
		t.Errorf("FromContextOrNew() without a stored context = %p, want a fresh one", got)
	}
}
