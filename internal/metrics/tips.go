package metrics

import (
	"math/rand"
	"sync"
)

// maxTips caps how many tips a single dashboard render shows.
const maxTips = 7

var tipBank = struct {
	low, medium, high, billHigh, universal []string
}{
	low: []string{
		"You're efficient! But remember to unplug idle chargers.",
		"Dry clothes in sunlight to save energy.",
		"Use natural ventilation instead of fans or coolers.",
	},
	medium: []string{
		"Run washing machines and dishwashers only with full loads.",
		"Use ceiling fans to reduce AC usage.",
		"Switch off appliances at the socket to prevent standby power loss.",
	},
	high: []string{
		"Replace old appliances with energy-efficient models (star-rated).",
		"Install solar-powered outdoor lighting.",
		"Reduce geyser usage - use warm water only when necessary.",
	},
	billHigh: []string{
		"Compare monthly bills to find usage patterns.",
		"Get an energy audit done to identify hidden consumption.",
		"Use programmable timers for water heaters and ACs.",
	},
	universal: []string{
		"Switch to LED lighting throughout the home.",
		"Use smart power strips for entertainment setups.",
		"Keep refrigerator coils clean to reduce energy usage.",
		"Use microwave ovens instead of traditional ovens where possible.",
		"Turn off the monitor if you're away from your computer.",
	},
}

// lockedSource serializes draws from a rand.Source64 so one generator can be
// shared across request goroutines. rand.Rand itself is not goroutine-safe.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewSharedRand returns a generator safe to hand to GenerateTips from
// concurrent callers. Long-lived servers construct one per component.
func NewSharedRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewSource(seed).(rand.Source64)})
}

// GenerateTips assembles the tip list for a reading plus the billed amount:
// one consumption bucket, the bill-amount bucket when the bill runs high, and
// the universal bank, shuffled via rng and capped. Callers that need
// deterministic output (tests) pass a seeded rng.
func GenerateTips(c Consumption, amount float64, rng *rand.Rand) []string {
	var tips []string

	switch kwh := c.KWh(); {
	case kwh < 100:
		tips = append(tips, tipBank.low...)
	case kwh <= 300:
		tips = append(tips, tipBank.medium...)
	default:
		tips = append(tips, tipBank.high...)
	}

	if amount > 1000 {
		tips = append(tips, tipBank.billHigh...)
	}
	tips = append(tips, tipBank.universal...)

	if rng != nil {
		rng.Shuffle(len(tips), func(i, j int) { tips[i], tips[j] = tips[j], tips[i] })
	}
	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}
