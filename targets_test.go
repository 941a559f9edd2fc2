package mtf

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeTargets(t *testing.T) {
	targets := ComputeTargets(INR(10000), INR(0), INR(0), Q(100), dec("0.005"), []Percent{1, 10})

	if !targets.TotalCost.Equal(INR(10000)) {
		t.Errorf("TotalCost = %v, want 10000", targets.TotalCost.Decimal())
	}
	if !targets.Breakeven.InDelta(INR(100.50251256281407), 1e-9) {
		t.Errorf("Breakeven = %v, want 100.5025125628", targets.Breakeven.Decimal())
	}
	if got := targets.Prices[10]; !got.InDelta(INR(110.55276381909548), 1e-9) {
		t.Errorf("Prices[10] = %v, want 110.5527638191", got.Decimal())
	}
	if got := targets.Prices[1]; !got.InDelta(INR(101.50753768844221), 1e-9) {
		t.Errorf("Prices[1] = %v, want 101.5075376884", got.Decimal())
	}
	if len(targets.Prices) != 2 {
		t.Errorf("len(Prices) = %d, want 2", len(targets.Prices))
	}
}

// TestBreakevenRecoversCost checks that selling at the breakeven price
// recovers the total cost once the sell buffer is paid.
func TestBreakevenRecoversCost(t *testing.T) {
	testCases := []struct {
		cost, charges, interest, qty float64
	}{
		{10000, 50, 1809, 100},
		{340850, 212.37, 915.02, 250},
		{1363.4, 0.81, 0.07, 1},
		{99999.99, 123.45, 0, 3},
	}
	buffer := dec("0.005")
	for _, tc := range testCases {
		targets := ComputeTargets(INR(tc.cost), INR(tc.charges), INR(tc.interest), Q(tc.qty), buffer, nil)
		proceeds := targets.Breakeven.Mul(Q(tc.qty)).Scale(decimal.NewFromInt(1).Sub(buffer))
		want := INR(tc.cost).Add(INR(tc.charges)).Add(INR(tc.interest))
		if !proceeds.InDelta(want, 1e-6) {
			t.Errorf("breakeven %v × %v × (1-K) = %v, want %v", targets.Breakeven.Decimal(), tc.qty, proceeds.Decimal(), want.Decimal())
		}
	}
}

func TestComputeTargetsZeroQuantity(t *testing.T) {
	targets := ComputeTargets(INR(100), INR(1), INR(1), Q(0), dec("0.005"), []Percent{5})
	if !targets.Breakeven.IsZero() {
		t.Errorf("Breakeven = %v, want 0", targets.Breakeven.Decimal())
	}
	if !targets.Prices[5].IsZero() {
		t.Errorf("Prices[5] = %v, want 0", targets.Prices[5].Decimal())
	}
}

func TestTargetPercents(t *testing.T) {
	testCases := []struct {
		custom Percent
		want   []Percent
	}{
		{10, []Percent{1, 2, 3, 5, 10}},
		{7.5, []Percent{1, 2, 3, 5, 7.5, 10}},
		{25, []Percent{1, 2, 3, 5, 10, 25}},
		{0, []Percent{0, 1, 2, 3, 5, 10}},
	}
	for _, tc := range testCases {
		cfg := testConfig(0)
		cfg.CustomTarget = tc.custom
		if got := cfg.TargetPercents(); !slices.Equal(got, tc.want) {
			t.Errorf("TargetPercents(custom=%v) = %v, want %v", tc.custom, got, tc.want)
		}
	}
}
