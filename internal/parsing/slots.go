// Package parsing normalizes raw profile tokens and decodes profiles handed over by the dialogue layer.
package parsing

import (
	"github.com/jonathan/career-matcher/internal/types"
	"github.com/mitchellh/mapstructure"
)

// ProfileFromSlots decodes a dialogue slot map into a normalized Profile.
// Each facet may be a list or a single string; unknown slots are ignored.
func ProfileFromSlots(slots map[string]any) (types.Profile, error) {
	var profile types.Profile

	cfg := &mapstructure.DecoderConfig{
		Result:           &profile,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return types.Profile{}, &SlotDecodeError{Message: "failed to create decoder", Cause: err}
	}
	if err := decoder.Decode(slots); err != nil {
		return types.Profile{}, &SlotDecodeError{Message: "failed to decode slots", Cause: err}
	}

	return NormalizeProfile(profile), nil
}
