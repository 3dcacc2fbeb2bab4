package ratelimit

import (
	"testing"
	"time"
)

func TestLimiter(t *testing.T) {
	burst := 1

	interval := 10 * time.Millisecond
	lim := Every(interval)
	r := NewLimiter(burst, time.Hour, lim)
	defer r.Stop()

	tooshort := 1 * time.Millisecond

	client := "127.0.0.1"
	expected := []bool{true, false, true, true, false, false}
	waits := []time.Duration{tooshort, interval, interval, tooshort, tooshort, tooshort}
	for i, exp := range expected {
		if got := r.Check(client); got != exp {
			t.Fatalf("iteration %d: expected %v, but got %v", i, exp, got)
		}
		time.Sleep(waits[i])
	}
}

func TestLimiterClientsAreIndependent(t *testing.T) {
	r := NewLimiter(1, time.Hour, Every(time.Hour))
	defer r.Stop()

	if !r.Check("a") {
		t.Fatal("first request from a should pass")
	}
	if r.Check("a") {
		t.Fatal("second request from a should be limited")
	}
	if !r.Check("b") {
		t.Fatal("b should have its own bucket")
	}
}

func TestSweepDropsIdleClients(t *testing.T) {
	r := NewLimiter(1, time.Minute, Every(time.Second))
	defer r.Stop()

	r.Check("idle")
	r.Check("busy")
	r.mu.Lock()
	r.clients["idle"].lastAccess = time.Now().Add(-2 * time.Minute)
	r.mu.Unlock()

	r.sweep(time.Now())

	if n := r.clientCount(); n != 1 {
		t.Fatalf("expected 1 client after sweep, got %d", n)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	r := NewLimiter(1, time.Minute, 1)
	r.Stop()
	r.Stop()
}
