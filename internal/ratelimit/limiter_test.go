package ratelimit

import (
	"sync"
	"testing"
	"time"
)

func testLimiter(t *testing.T) (*Limiter, *time.Time) {
	t.Helper()
	l := New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestLimiterWindow(t *testing.T) {
	t.Run("denies request over the class max", func(t *testing.T) {
		l, _ := testLimiter(t)

		for i := 0; i < 30; i++ {
			d := l.Admit("user-1", ClassRealtime)
			if !d.Allowed {
				t.Fatalf("request %d unexpectedly denied", i+1)
			}
		}

		d := l.Admit("user-1", ClassRealtime)
		if d.Allowed {
			t.Fatal("31st request should be denied")
		}
		if d.RetryAfter <= 0 || d.RetryAfter > time.Minute {
			t.Fatalf("retryAfter %v outside remaining window", d.RetryAfter)
		}
	})

	t.Run("resets after the window elapses", func(t *testing.T) {
		l, now := testLimiter(t)

		for i := 0; i < 31; i++ {
			l.Admit("user-1", ClassContext)
		}
		*now = now.Add(61 * time.Second)

		d := l.Admit("user-1", ClassContext)
		if !d.Allowed {
			t.Fatal("request after window reset should be allowed")
		}
	})

	t.Run("clients and classes are independent", func(t *testing.T) {
		l, _ := testLimiter(t)

		for i := 0; i < 10; i++ {
			l.Admit("user-1", ClassContext)
		}
		if d := l.Admit("user-1", ClassContext); d.Allowed {
			t.Fatal("user-1 context budget should be spent")
		}
		if d := l.Admit("user-2", ClassContext); !d.Allowed {
			t.Fatal("user-2 should have a fresh bucket")
		}
		if d := l.Admit("user-1", ClassGeneral); !d.Allowed {
			t.Fatal("general class should not share the context bucket")
		}
	})

	t.Run("retryAfter shrinks as the window ages", func(t *testing.T) {
		l, now := testLimiter(t)

		for i := 0; i < 11; i++ {
			l.Admit("user-1", ClassContext)
		}
		*now = now.Add(45 * time.Second)

		d := l.Admit("user-1", ClassContext)
		if d.Allowed {
			t.Fatal("expected denial inside the window")
		}
		if d.RetryAfter > 15*time.Second {
			t.Fatalf("retryAfter %v should be at most the remaining 15s", d.RetryAfter)
		}
	})
}

func TestLimiterForgive(t *testing.T) {
	t.Run("failed realtime calls do not consume the budget", func(t *testing.T) {
		l, _ := testLimiter(t)

		// 30 failed analyses: each admitted then forgiven.
		for i := 0; i < 30; i++ {
			if d := l.Admit("user-1", ClassRealtime); !d.Allowed {
				t.Fatalf("request %d unexpectedly denied", i+1)
			}
			l.Forgive("user-1", ClassRealtime)
		}

		if d := l.Admit("user-1", ClassRealtime); !d.Allowed {
			t.Fatal("budget should be untouched after forgiven failures")
		}
	})

	t.Run("forgive is a no-op for counted classes", func(t *testing.T) {
		l, _ := testLimiter(t)

		for i := 0; i < 10; i++ {
			l.Admit("user-1", ClassContext)
			l.Forgive("user-1", ClassContext)
		}
		if d := l.Admit("user-1", ClassContext); d.Allowed {
			t.Fatal("context class must count every request")
		}
	})

	t.Run("forgive ignores rolled-over windows", func(t *testing.T) {
		l, now := testLimiter(t)

		l.Admit("user-1", ClassRealtime)
		*now = now.Add(2 * time.Minute)
		l.Forgive("user-1", ClassRealtime)

		d := l.Admit("user-1", ClassRealtime)
		if !d.Allowed || d.Remaining != 29 {
			t.Fatalf("expected fresh window with 29 remaining, got %+v", d)
		}
	})
}

func TestLimiterConcurrent(t *testing.T) {
	l, _ := testLimiter(t)

	var wg sync.WaitGroup
	allowed := make(chan bool, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed <- l.Admit("user-1", ClassGeneral).Allowed
		}()
	}
	wg.Wait()
	close(allowed)

	n := 0
	for ok := range allowed {
		if ok {
			n++
		}
	}
	if n != 100 {
		t.Fatalf("expected exactly 100 admissions under load, got %d", n)
	}
}
