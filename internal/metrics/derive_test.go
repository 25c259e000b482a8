package metrics

import (
	"math"
	"testing"
)

func TestNewConsumptionRejectsInvalid(t *testing.T) {
	for _, v := range []float64{-1, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := NewConsumption(v); err == nil {
			t.Errorf("NewConsumption(%v): expected error", v)
		}
	}
	if _, err := NewConsumption(0); err != nil {
		t.Errorf("NewConsumption(0): unexpected error %v", err)
	}
}

func TestCarbonKg(t *testing.T) {
	cases := []struct {
		kwh  float64
		want float64
	}{
		{250, 205.0},
		{0, 0},
		{1, 0.8},
		{100, 82.0},
		{123.45, 101.2}, // 101.229 rounds down
		{99.9, 81.9},    // 81.918 rounds down
	}
	for _, tc := range cases {
		c, err := NewConsumption(tc.kwh)
		if err != nil {
			t.Fatalf("NewConsumption(%v): %v", tc.kwh, err)
		}
		if got := CarbonKg(c); got != tc.want {
			t.Errorf("CarbonKg(%v) = %v, want %v", tc.kwh, got, tc.want)
		}
	}
}

func TestSavingsTipBuckets(t *testing.T) {
	cases := []struct {
		kwh  float64
		want string
	}{
		{0, "Great job! Your energy usage is efficient."},
		{100, "Great job! Your energy usage is efficient."},
		{100.5, "Your usage is moderate. Energy-efficient appliances can help."},
		{200, "Your usage is moderate. Energy-efficient appliances can help."},
		{201, "Shift high-energy tasks to off-peak hours for cost savings."},
		{250, "Shift high-energy tasks to off-peak hours for cost savings."},
		{300, "Shift high-energy tasks to off-peak hours for cost savings."},
		{301, "High usage! Consider reducing heavy-load appliances or going solar."},
	}
	for _, tc := range cases {
		c, err := NewConsumption(tc.kwh)
		if err != nil {
			t.Fatalf("NewConsumption(%v): %v", tc.kwh, err)
		}
		if got := SavingsTip(c); got != tc.want {
			t.Errorf("SavingsTip(%v) = %q, want %q", tc.kwh, got, tc.want)
		}
	}
}
