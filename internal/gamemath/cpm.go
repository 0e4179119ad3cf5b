package gamemath

import "sort"

// cpMultipliers is the CP multiplier table from the game master, indexed
// by half-integer level from 1 to 51. Half levels are exact in float64 so
// the map lookup is safe.
var cpMultipliers = map[float64]float64{
	1.0: 0.094, 1.5: 0.135137432, 2.0: 0.16639787, 2.5: 0.192650919,
	3.0: 0.21573247, 3.5: 0.236572661, 4.0: 0.25572005, 4.5: 0.273530381,
	5.0: 0.29024988, 5.5: 0.306057377, 6.0: 0.3210876, 6.5: 0.335445036,
	7.0: 0.34921268, 7.5: 0.362457751, 8.0: 0.37523559, 8.5: 0.387592406,
	9.0: 0.39956728, 9.5: 0.411193551, 10.0: 0.42250001, 10.5: 0.432926419,
	11.0: 0.44310755, 11.5: 0.453059958, 12.0: 0.46279839, 12.5: 0.472336083,
	13.0: 0.48168495, 13.5: 0.4908558, 14.0: 0.49985844, 14.5: 0.508701765,
	15.0: 0.51739395, 15.5: 0.525942511, 16.0: 0.53435433, 16.5: 0.542635767,
	17.0: 0.55079269, 17.5: 0.558830576, 18.0: 0.56675452, 18.5: 0.574569153,
	19.0: 0.58227891, 19.5: 0.589887917, 20.0: 0.59740001, 20.5: 0.604818814,
	21.0: 0.61215729, 21.5: 0.619399365, 22.0: 0.62656713, 22.5: 0.633644533,
	23.0: 0.64065295, 23.5: 0.647576426, 24.0: 0.65443563, 24.5: 0.661214806,
	25.0: 0.667934, 25.5: 0.674577537, 26.0: 0.68116492, 26.5: 0.687680648,
	27.0: 0.69414365, 27.5: 0.700538673, 28.0: 0.70688421, 28.5: 0.713164996,
	29.0: 0.71939909, 29.5: 0.725571552, 30.0: 0.7317, 30.5: 0.734741009,
	31.0: 0.73776948, 31.5: 0.740785574, 32.0: 0.74378943, 32.5: 0.746781211,
	33.0: 0.74976104, 33.5: 0.752729087, 34.0: 0.75568551, 34.5: 0.758630378,
	35.0: 0.76156384, 35.5: 0.764486065, 36.0: 0.76739717, 36.5: 0.770297266,
	37.0: 0.7731865, 37.5: 0.776064962, 38.0: 0.77893275, 38.5: 0.781790055,
	39.0: 0.78463697, 39.5: 0.787473578, 40.0: 0.79030001, 40.5: 0.792803968,
	41.0: 0.79530001, 41.5: 0.797800015, 42.0: 0.8003, 42.5: 0.802799995,
	43.0: 0.8053, 43.5: 0.8078, 44.0: 0.81029999, 44.5: 0.812799985,
	45.0: 0.81529999, 45.5: 0.81779999, 46.0: 0.82029999, 46.5: 0.82279999,
	47.0: 0.82529999, 47.5: 0.82779999, 48.0: 0.83029999, 48.5: 0.83279999,
	49.0: 0.83529999, 49.5: 0.83779999, 50.0: 0.84029999, 50.5: 0.84279999,
	51.0: 0.84529999,
}

// CPMultiplier returns the CP multiplier for a level. The second return
// is false for levels outside the table.
func CPMultiplier(level float64) (float64, bool) {
	m, ok := cpMultipliers[level]
	return m, ok
}

// Levels returns every level in the CPM table in ascending order
func Levels() []float64 {
	levels := make([]float64, 0, len(cpMultipliers))
	for level := range cpMultipliers {
		levels = append(levels, level)
	}
	sort.Float64s(levels)
	return levels
}
