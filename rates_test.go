package mtf

import "testing"

func TestDefaultRatesCharges(t *testing.T) {
	rates := DefaultRates()

	// 10000 of turnover: 40 brokerage, 10 STT, 0.325 txn, 0.01 SEBI,
	// 1.5 stamp duty and 18% GST on 40.335.
	if got := rates.BuyCharges(Q(100), INR(100)); !got.Equal(INR(59.0953)) {
		t.Errorf("BuyCharges() = %v, want 59.0953", got.Decimal())
	}
	if got := rates.SellCharges(Q(100), INR(100)); !got.Equal(INR(57.5953)) {
		t.Errorf("SellCharges() = %v, want 57.5953", got.Decimal())
	}
}

func TestRateTableCharges(t *testing.T) {
	rates := DefaultRates()
	testCases := []struct {
		name  string
		trade Trade
		want  Money
	}{
		{"explicit buy", buy("ABC", 0, 10, 100, 0.25), INR(2.5)},
		{"explicit zero", sell("ABC", 0, 10, 100, 0), INR(0)},
		{"estimated buy", estimated(buy("ABC", 0, 100, 100, 0)), INR(59.0953)},
		{"estimated sell", estimated(sell("ABC", 0, 100, 100, 0)), INR(57.5953)},
	}
	for _, tc := range testCases {
		if got := rates.charges(tc.trade); !got.Equal(tc.want) {
			t.Errorf("%s: charges() = %v, want %v", tc.name, got.Decimal(), tc.want.Decimal())
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := testConfig(0).Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}

	testCases := []struct {
		name   string
		modify func(*Config)
	}{
		{"funded ratio above one", func(c *Config) { c.FundedRatio = dec("1.5") }},
		{"negative funded ratio", func(c *Config) { c.FundedRatio = dec("-0.1") }},
		{"negative delay", func(c *Config) { c.InterestDelay = -1 }},
		{"negative target", func(c *Config) { c.CustomTarget = -5 }},
		{"sell buffer of one", func(c *Config) { c.Rates.SellBuffer = dec("1") }},
		{"no as-of date", func(c *Config) { c.AsOf = Config{}.AsOf }},
	}
	for _, tc := range testCases {
		cfg := testConfig(0)
		tc.modify(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: Validate() succeeded, want an error", tc.name)
		}
	}

	cfg := testConfig(0)
	cfg.FundedRatio = dec("0")
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() with a cash purchase: unexpected error: %v", err)
	}
}
