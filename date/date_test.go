package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	got := New(2025, time.February, 30)
	if want := New(2025, time.March, 2); got != want {
		t.Errorf("New(2025, 2, 30) = %v, want %v", got, want)
	}
}

func TestSub(t *testing.T) {
	testCases := []struct {
		from, to Date
		want     int
	}{
		{New(2025, 1, 1), New(2025, 1, 1), 0},
		{New(2025, 1, 1), New(2025, 1, 11), 10},
		{New(2025, 1, 1), New(2026, 1, 1), 365},
		{New(2024, 1, 1), New(2025, 1, 1), 366},
		{New(2025, 1, 11), New(2025, 1, 1), -10},
	}
	for _, tc := range testCases {
		if got := tc.to.Sub(tc.from); got != tc.want {
			t.Errorf("%v.Sub(%v) = %d, want %d", tc.to, tc.from, got, tc.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a, b := New(2025, 3, 1), New(2025, 3, 2)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare is not consistent for %v and %v", a, b)
	}
}

func TestParseTradeDate(t *testing.T) {
	testCases := []struct {
		in   string
		want Date
	}{
		{"06/10/2025", New(2025, time.October, 6)},
		{"06-10-2025", New(2025, time.October, 6)},
		{"06.10.2025", New(2025, time.October, 6)},
		{"6/1/25", New(2025, time.January, 6)},
		{" 31/12/24 ", New(2024, time.December, 31)},
		{"2025-10-06", New(2025, time.October, 6)},
		{"2025-7-1", New(2025, time.July, 1)},
		{"2025-10-06T09:15:00+05:30", New(2025, time.October, 6)},
		{"06 Oct 2025", New(2025, time.October, 6)},
		{"Oct 6, 2025", New(2025, time.October, 6)},
		{"06-Oct-2025", New(2025, time.October, 6)},
		{"20251006", New(2025, time.October, 6)},
	}
	for _, tc := range testCases {
		got, err := ParseTradeDate(tc.in)
		if err != nil {
			t.Errorf("ParseTradeDate(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTradeDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseTradeDateInvalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "32/01/2025", "01/13/2025"} {
		if _, err := ParseTradeDate(in); err == nil {
			t.Errorf("ParseTradeDate(%q) expected an error", in)
		}
	}
}

func TestDisplay(t *testing.T) {
	if got, want := New(2025, time.October, 6).Display(), "06/10/2025"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
}

func TestJSON(t *testing.T) {
	d := New(2025, time.October, 6)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(b) != `"2025-10-06"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, `"2025-10-06"`)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != d {
		t.Errorf("UnmarshalJSON() = %v, want %v", back, d)
	}
}
