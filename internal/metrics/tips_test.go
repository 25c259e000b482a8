package metrics

import (
	"math/rand"
	"reflect"
	"sync"
	"testing"
)

func mustConsumption(t *testing.T, v float64) Consumption {
	t.Helper()
	c, err := NewConsumption(v)
	if err != nil {
		t.Fatalf("NewConsumption(%v): %v", v, err)
	}
	return c
}

func TestGenerateTipsCap(t *testing.T) {
	// High consumption and high bill pulls from three banks; the cap holds.
	tips := GenerateTips(mustConsumption(t, 400), 2000, rand.New(rand.NewSource(1)))
	if len(tips) != 7 {
		t.Fatalf("len(tips) = %d, want 7", len(tips))
	}
	seen := make(map[string]bool, len(tips))
	for _, tip := range tips {
		if seen[tip] {
			t.Fatalf("duplicate tip %q", tip)
		}
		seen[tip] = true
	}
}

func TestGenerateTipsDeterministicWithSeed(t *testing.T) {
	a := GenerateTips(mustConsumption(t, 250), 1500, rand.New(rand.NewSource(42)))
	b := GenerateTips(mustConsumption(t, 250), 1500, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different tips:\n%v\n%v", a, b)
	}
}

func TestGenerateTipsBuckets(t *testing.T) {
	cases := []struct {
		name     string
		kwh      float64
		amount   float64
		contains string
		excludes string
	}{
		{
			name:     "low bucket",
			kwh:      50,
			amount:   500,
			contains: tipBank.low[0],
			excludes: tipBank.high[0],
		},
		{
			name:     "medium bucket",
			kwh:      200,
			amount:   500,
			contains: tipBank.medium[0],
			excludes: tipBank.low[0],
		},
		{
			name:     "high bucket",
			kwh:      350,
			amount:   500,
			contains: tipBank.high[0],
			excludes: tipBank.medium[0],
		},
		{
			name:     "high bill adds billHigh bank",
			kwh:      50,
			amount:   1001,
			contains: tipBank.billHigh[0],
			excludes: tipBank.high[0],
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// nil rng keeps bank order so membership is easy to assert
			tips := GenerateTips(mustConsumption(t, tc.kwh), tc.amount, nil)
			if !containsTip(tips, tc.contains) {
				t.Errorf("tips missing %q: %v", tc.contains, tips)
			}
			if containsTip(tips, tc.excludes) {
				t.Errorf("tips should not include %q: %v", tc.excludes, tips)
			}
			if len(tips) > 7 {
				t.Errorf("len(tips) = %d, want <= 7", len(tips))
			}
		})
	}
}

func TestGenerateTipsSharedRandConcurrent(t *testing.T) {
	// Servers hand one generator to every request goroutine; shuffling
	// through it from parallel calls must be safe under the race detector.
	rng := NewSharedRand(1)
	c := mustConsumption(t, 250)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tips := GenerateTips(c, 1500, rng)
				if len(tips) == 0 || len(tips) > 7 {
					t.Errorf("len(tips) = %d, want 1..7", len(tips))
					return
				}
			}
		}()
	}
	wg.Wait()
}

func containsTip(tips []string, want string) bool {
	for _, tip := range tips {
		if tip == want {
			return true
		}
	}
	return false
}
