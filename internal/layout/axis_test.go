package layout

import (
	"testing"
	"time"
)

func TestToNum(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"epoch", date(1970, 1, 1), 0},
		{"next day", date(1970, 1, 2), 1},
		{"noon", time.Date(1970, 1, 1, 12, 0, 0, 0, time.UTC), 0.5},
		{"2024", date(2024, 1, 1), 19723},
		{"before epoch", date(1969, 12, 31), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToNum(tt.t); got != tt.want {
				t.Errorf("ToNum(%v) = %v, want %v", tt.t, got, tt.want)
			}
			if back := FromNum(tt.want); !back.Equal(tt.t) {
				t.Errorf("FromNum(%v) = %v, want %v", tt.want, back, tt.t)
			}
		})
	}
}

func TestMonthTicks(t *testing.T) {
	ticks := MonthTicks(ToNum(date(2024, 1, 1)), ToNum(date(2024, 3, 15)))

	want := []string{"Jan 2024", "Feb 2024", "Mar 2024"}
	if len(ticks) != len(want) {
		t.Fatalf("MonthTicks() = %+v, want %d ticks", ticks, len(want))
	}
	for i, w := range want {
		if ticks[i].Label != w {
			t.Errorf("ticks[%d].Label = %q, want %q", i, ticks[i].Label, w)
		}
	}
	if ticks[1].Value != ToNum(date(2024, 2, 1)) {
		t.Errorf("ticks[1].Value = %v, want Feb 1", ticks[1].Value)
	}
}

func TestMonthTicks_MidMonthStart(t *testing.T) {
	ticks := MonthTicks(ToNum(date(2024, 1, 15)), ToNum(date(2024, 1, 20)))
	if len(ticks) != 0 {
		t.Errorf("MonthTicks() = %+v, want none", ticks)
	}

	ticks = MonthTicks(ToNum(date(2023, 12, 15)), ToNum(date(2024, 2, 1)))
	if len(ticks) != 2 || ticks[0].Label != "Jan 2024" || ticks[1].Label != "Feb 2024" {
		t.Errorf("MonthTicks() = %+v, want Jan 2024 and Feb 2024", ticks)
	}
}

func TestMonthTicks_Reversed(t *testing.T) {
	if ticks := MonthTicks(10, 5); ticks != nil {
		t.Errorf("MonthTicks(reversed) = %+v, want nil", ticks)
	}
}
