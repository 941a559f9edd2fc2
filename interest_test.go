package mtf

import (
	"testing"
)

func TestAccrue(t *testing.T) {
	testCases := []struct {
		name      string
		principal Money
		charges   Money
		funded    string
		days      int
		want      Money
	}{
		{"one year fully funded", INR(10000), INR(50), "1", 365, INR(1809)},
		{"one year half funded", INR(10000), INR(50), "0.5", 365, INR(904.5)},
		{"ten days", INR(3650), INR(0), "1", 10, INR(18)},
		{"unfunded", INR(10000), INR(50), "0", 365, INR(0)},
		{"same day", INR(10000), INR(50), "1", 0, INR(0)},
		{"negative days are clamped", INR(10000), INR(50), "1", -3, INR(0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Accrue(tc.principal, tc.charges, dec(tc.funded), dec("0.18"), tc.days)
			if !got.Equal(tc.want) {
				t.Errorf("Accrue() = %v, want %v", got.Decimal(), tc.want.Decimal())
			}
		})
	}
}

func TestAccrueMonotonic(t *testing.T) {
	prev := INR(0)
	for days := 0; days <= 800; days++ {
		got := Accrue(INR(123456.78), INR(91.23), dec("0.75"), dec("0.18"), days)
		if got.IsNegative() {
			t.Fatalf("Accrue(days=%d) = %v, want non negative", days, got.Decimal())
		}
		if got.LessThan(prev) {
			t.Fatalf("Accrue(days=%d) = %v is lower than previous day %v", days, got.Decimal(), prev.Decimal())
		}
		prev = got
	}
}

func TestDaysHeld(t *testing.T) {
	testCases := []struct {
		from, to, delay, want int
	}{
		{0, 10, 0, 10},
		{0, 10, 3, 7},
		{0, 10, 10, 0},
		{0, 10, 30, 0},
		{10, 0, 0, 0}, // acquired after the as-of date
	}
	for _, tc := range testCases {
		got := DaysHeld(day0.Add(tc.from), day0.Add(tc.to), tc.delay)
		if got != tc.want {
			t.Errorf("DaysHeld(%d, %d, %d) = %d, want %d", tc.from, tc.to, tc.delay, got, tc.want)
		}
	}
}
