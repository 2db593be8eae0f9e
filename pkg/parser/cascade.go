// Package parser extracts flight booking fields from flattened email text.
//
// Each field is produced by an ordered cascade of tiers. The first tier
// that yields a non-empty value wins, and a miss at every tier yields "".
// Nothing in this package fails, blocks or keeps state between calls.
package parser

// step is one tier of an extraction cascade.
type step func(text string) string

// firstOf runs steps in order and returns the first non-empty result.
func firstOf(steps []step, text string) string {
	for _, s := range steps {
		if v := s(text); v != "" {
			return v
		}
	}
	return ""
}
