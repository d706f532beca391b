package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewRateLimiterWithConfig(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("10.0.0.1") {
		t.Error("fourth request within the window must be blocked")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, time.Minute)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first client should be allowed")
	}
	if !rl.allow("10.0.0.2") {
		t.Error("second client must not share the first client's budget")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

	if !rl.allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.allow("10.0.0.1") {
		t.Fatal("second request within the window must be blocked")
	}

	time.Sleep(20 * time.Millisecond)

	if !rl.allow("10.0.0.1") {
		t.Error("request after the window expired should be allowed")
	}
}

func TestRateLimiter_ResetClearsState(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, time.Minute)

	_ = rl.allow("10.0.0.1")
	rl.Reset()

	if !rl.allow("10.0.0.1") {
		t.Error("request after reset should be allowed")
	}
}

func TestRateLimiter_CleanupRemovesExpiredEntries(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, 5*time.Millisecond)

	_ = rl.allow("10.0.0.1")
	time.Sleep(10 * time.Millisecond)
	rl.Cleanup()

	rl.mu.Lock()
	remaining := len(rl.entries)
	rl.mu.Unlock()
	if remaining != 0 {
		t.Errorf("expected expired entries removed, %d remain", remaining)
	}
}
