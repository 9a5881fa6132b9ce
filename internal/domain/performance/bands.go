package performance

import (
	"orgsynth/internal/domain/profile"
	"orgsynth/internal/platform/sampler"
)

type bandRange struct {
	min float64
	max float64
}

// Numeric sub-range per band. Upper bounds are exclusive except the top of
// the scale.
var bandRanges = map[string]bandRange{
	profile.BandExceptional:    {4.7, 5.0},
	profile.BandExceeds:        {4.0, 4.7},
	profile.BandMeets:          {3.0, 4.0},
	profile.BandDeveloping:     {2.0, 3.0},
	profile.BandUnsatisfactory: {1.0, 2.0},
}

// Target global band distribution: 8 / 22 / 55 / 12 / 3.
var bandWeights = []sampler.WeightedChoice{
	{Value: profile.BandExceptional, Weight: 8},
	{Value: profile.BandExceeds, Weight: 22},
	{Value: profile.BandMeets, Weight: 55},
	{Value: profile.BandDeveloping, Weight: 12},
	{Value: profile.BandUnsatisfactory, Weight: 3},
}
