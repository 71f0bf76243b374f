package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/health"
	"github.com/jsamuelsen11/merchant-dashboard/mocks"
)

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	breakerOpen := errors.New("merchant-api: failing (circuit breaker open)")
	poolFull := errors.New("views: at capacity")

	type check struct {
		name string
		err  error
	}
	tests := []struct {
		name   string
		checks []check
		want   map[string]error
	}{
		{name: "nothing registered", want: map[string]error{}},
		{
			name:   "all healthy",
			checks: []check{{"merchant-api", nil}, {"views", nil}},
			want:   map[string]error{"merchant-api": nil, "views": nil},
		},
		{
			name:   "breaker open",
			checks: []check{{"merchant-api", breakerOpen}, {"views", nil}},
			want:   map[string]error{"merchant-api": breakerOpen, "views": nil},
		},
		{
			name:   "later registration wins a name",
			checks: []check{{"views", nil}, {"views", poolFull}},
			want:   map[string]error{"views": poolFull},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checks {
				r.Register(checker(t, c.name, c.err))
			}

			got := r.CheckAll(context.Background())
			if got == nil {
				t.Fatal("CheckAll() = nil, want a map")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("CheckAll() = %v, want %v", got, tt.want)
			}
			for name, want := range tt.want {
				if !errors.Is(got[name], want) || (want == nil && got[name] != nil) {
					t.Errorf("CheckAll()[%s] = %v, want %v", name, got[name], want)
				}
			}
		})
	}
}

func TestCheckAll_PassesContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("merchant-api")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New(health.WithCheckTimeout(0))
	r.Register(c)

	if got := r.CheckAll(ctx)["merchant-api"]; !errors.Is(got, context.Canceled) {
		t.Errorf("merchant-api = %v, want context.Canceled", got)
	}
}

func TestCheckAll_SlowCheckTimesOut(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("merchant-api")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		return nil
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)
	r.Register(checker(t, "views", nil))

	start := time.Now()
	got := r.CheckAll(context.Background())

	if !errors.Is(got["merchant-api"], context.DeadlineExceeded) {
		t.Errorf("merchant-api = %v, want DeadlineExceeded", got["merchant-api"])
	}
	if got["views"] != nil {
		t.Errorf("views = %v, want nil", got["views"])
	}
	if elapsed := time.Since(start); elapsed >= 60*time.Millisecond {
		t.Errorf("CheckAll() took %v, want it to abandon the slow check", elapsed)
	}
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("views").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
				return
			}
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()
}
