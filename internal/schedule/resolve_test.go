package schedule

import (
	"testing"
	"time"
)

// 2026-10-12 is a Monday.
func date(day, hour, minute, sec int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, sec, 0, time.UTC)
}

func mustSpec(t *testing.T, day Weekday, hour, minute int) Spec {
	t.Helper()
	s, err := New(day, hour, minute, Reboot, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestResolve_MondayToSunday(t *testing.T) {
	got := Resolve(date(12, 10, 0, 0), mustSpec(t, Sunday, 2, 0))

	if want := date(18, 2, 0, 0); !got.ActionTime.Equal(want) {
		t.Errorf("ActionTime = %v; want %v", got.ActionTime, want)
	}
	if want := date(18, 1, 55, 0); !got.WarningTime.Equal(want) {
		t.Errorf("WarningTime = %v; want %v", got.WarningTime, want)
	}
}

func TestResolve_SaturdayWrapsToSunday(t *testing.T) {
	now := date(17, 12, 0, 0)
	if now.Weekday() != time.Saturday {
		t.Fatalf("fixture is not a Saturday: %v", now.Weekday())
	}
	if n := DaysAhead(now.Weekday(), Sunday); n != 1 {
		t.Fatalf("DaysAhead = %d; want 1", n)
	}
	got := Resolve(now, mustSpec(t, Sunday, 2, 0))
	if want := date(18, 2, 0, 0); !got.ActionTime.Equal(want) {
		t.Errorf("ActionTime = %v; want %v", got.ActionTime, want)
	}
}

func TestResolve_TodayAlreadyPassed(t *testing.T) {
	now := date(11, 2, 10, 0) // Sunday 02:10
	got := Resolve(now, mustSpec(t, Sunday, 2, 0))

	if want := date(11, 2, 0, 0); !got.ActionTime.Equal(want) {
		t.Fatalf("ActionTime = %v; want %v (no forward jump)", got.ActionTime, want)
	}
	if !got.ActionTime.Before(now) {
		t.Fatal("expected a target in the past")
	}
	if !got.Due(now) {
		t.Fatal("past target must be due")
	}
	if got.Remaining(now) >= 0 {
		t.Fatalf("Remaining = %v; want negative", got.Remaining(now))
	}
}

func TestResolve_TodayLaterSameDay(t *testing.T) {
	now := date(12, 1, 0, 0) // Monday 01:00
	got := Resolve(now, mustSpec(t, Monday, 23, 45))
	if want := date(12, 23, 45, 0); !got.ActionTime.Equal(want) {
		t.Fatalf("ActionTime = %v; want %v", got.ActionTime, want)
	}
	if got.Due(now) {
		t.Fatal("future target must not be due")
	}
}

func TestResolve_SecondsZeroed(t *testing.T) {
	got := Resolve(date(12, 10, 0, 59), mustSpec(t, Tuesday, 4, 30))
	if got.ActionTime.Second() != 0 || got.ActionTime.Nanosecond() != 0 {
		t.Fatalf("expected zero seconds, got %v", got.ActionTime)
	}
}

func TestResolve_WarningLeadAndPurity(t *testing.T) {
	start := date(10, 0, 0, 0)
	for step := 0; step < 7*24*4; step++ {
		now := start.Add(time.Duration(step) * 15 * time.Minute)
		for day := Sunday; day <= Saturday; day++ {
			spec := mustSpec(t, day, step%24, (step*7)%60)
			a := Resolve(now, spec)
			b := Resolve(now, spec)
			if a != b {
				t.Fatalf("Resolve not deterministic at %v: %+v vs %+v", now, a, b)
			}
			if a.ActionTime.Sub(a.WarningTime) != WarningLead {
				t.Fatalf("warning lead = %v at %v", a.ActionTime.Sub(a.WarningTime), now)
			}
			if a.ActionTime.Weekday() != day.Time() {
				t.Fatalf("ActionTime %v not on %s", a.ActionTime, day)
			}
			midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			days := int(a.ActionTime.Sub(midnight) / (24 * time.Hour))
			if days < 0 || days > 6 {
				t.Fatalf("days ahead = %d for now=%v spec=%s", days, now, spec)
			}
		}
	}
}

func TestDaysAhead(t *testing.T) {
	for today := time.Sunday; today <= time.Saturday; today++ {
		for target := Sunday; target <= Saturday; target++ {
			n := DaysAhead(today, target)
			if n < 0 || n > 6 {
				t.Fatalf("DaysAhead(%v, %s) = %d", today, target, n)
			}
			if got := time.Weekday((int(today) + n) % 7); got != target.Time() {
				t.Fatalf("DaysAhead(%v, %s) = %d lands on %v", today, target, n, got)
			}
		}
	}
}

func TestResolve_KeepsWallClockAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Clocks fall back on Sunday 2026-11-01.
	now := time.Date(2026, time.October, 30, 12, 0, 0, 0, loc)
	got := Resolve(now, mustSpec(t, Sunday, 6, 0))
	if got.ActionTime.Day() != 1 || got.ActionTime.Hour() != 6 || got.ActionTime.Minute() != 0 {
		t.Fatalf("ActionTime = %v; want 2026-11-01 06:00 local", got.ActionTime)
	}
}

func TestTarget_RemainingMeasuresToWarningTime(t *testing.T) {
	tgt := Resolve(date(12, 10, 0, 0), mustSpec(t, Monday, 12, 0))

	if got := tgt.Remaining(date(12, 11, 50, 0)); got != 5*time.Minute {
		t.Errorf("Remaining at 11:50 = %v; want 5m", got)
	}
	at := date(12, 11, 55, 0)
	if got := tgt.Remaining(at); got != 0 {
		t.Errorf("Remaining at 11:55 = %v; want 0", got)
	}
	if !tgt.Due(at) {
		t.Errorf("expected target due at the warning time")
	}
	if got := tgt.Remaining(tgt.ActionTime); got != -WarningLead {
		t.Errorf("Remaining at ActionTime = %v; want %v", got, -WarningLead)
	}
}
