package maze

import (
	"testing"
	"time"
)

func TestScheduleFiresOnce(t *testing.T) {
	var s Schedule
	if fired, _ := s.Advance(time.Hour); fired {
		t.Fatal("idle schedule fired")
	}

	s.Start(100 * time.Millisecond)
	if fired, _ := s.Advance(60 * time.Millisecond); fired {
		t.Fatal("fired early")
	}
	if got := s.Remaining(); got != 40*time.Millisecond {
		t.Fatalf("Remaining() = %v, want 40ms", got)
	}

	fired, rest := s.Advance(50 * time.Millisecond)
	if !fired || rest != 10*time.Millisecond {
		t.Fatalf("Advance = (%v, %v), want (true, 10ms)", fired, rest)
	}
	if s.Armed() {
		t.Fatal("schedule still armed after firing")
	}
	if fired, _ := s.Advance(time.Second); fired {
		t.Fatal("fired twice")
	}
}

func TestScheduleCancel(t *testing.T) {
	var s Schedule
	s.Start(time.Second)
	s.Cancel()
	if fired, _ := s.Advance(2 * time.Second); fired {
		t.Fatal("cancelled schedule fired")
	}
}

func TestScheduleZeroDelay(t *testing.T) {
	var s Schedule
	s.Start(-time.Second)
	if fired, rest := s.Advance(0); !fired || rest != 0 {
		t.Fatalf("Advance(0) = (%v, %v), want (true, 0)", fired, rest)
	}
}
