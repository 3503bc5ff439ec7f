package domain

import "math/rand"

// BreakSuggestions are the short activities offered during a break.
var BreakSuggestions = []string{
	"Stand up and stretch for a minute.",
	"Practice deep breathing for 30 seconds.",
	"Look at something 20 feet away for 20 seconds (20-20-20 rule).",
	"Do 10 jumping jacks to boost circulation.",
	"Drink a glass of water.",
	"Roll your shoulders and neck to release tension.",
	"Close your eyes and meditate for a minute.",
	"Write down one key concept you just learned.",
}

// PickBreakSuggestion returns one suggestion chosen by rng.
func PickBreakSuggestion(rng *rand.Rand) string {
	return BreakSuggestions[rng.Intn(len(BreakSuggestions))]
}
