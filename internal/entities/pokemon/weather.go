package pokemon

import (
	"sort"
	"strings"
)

// Weather is an in-game weather condition
type Weather string

// Weather conditions
const (
	WeatherClear        Weather = "clear"
	WeatherSunny        Weather = "sunny"
	WeatherPartlyCloudy Weather = "partly_cloudy"
	WeatherCloudy       Weather = "cloudy"
	WeatherRain         Weather = "rain"
	WeatherSnow         Weather = "snow"
	WeatherFog          Weather = "fog"
	WeatherWindy        Weather = "windy"
)

var weatherEmojis = map[Weather]string{
	WeatherClear:        "🌙",
	WeatherSunny:        "☀️",
	WeatherPartlyCloudy: "⛅",
	WeatherCloudy:       "☁️",
	WeatherRain:         "🌧️",
	WeatherSnow:         "❄️",
	WeatherFog:          "🌫️",
	WeatherWindy:        "🪁",
}

var weatherBoosts = map[Weather][]Type{
	WeatherClear:        {TypeFire, TypeGrass, TypeGround},
	WeatherSunny:        {TypeFire, TypeGrass, TypeGround},
	WeatherPartlyCloudy: {TypeNormal, TypeRock},
	WeatherCloudy:       {TypeFighting, TypePoison, TypeFairy},
	WeatherRain:         {TypeWater, TypeElectric, TypeBug},
	WeatherSnow:         {TypeIce, TypeSteel},
	WeatherFog:          {TypeDark, TypeGhost},
	WeatherWindy:        {TypeFlying, TypeDragon, TypePsychic},
}

// Emoji returns the emoji for the weather condition
func (w Weather) Emoji() string {
	if emoji, ok := weatherEmojis[w]; ok {
		return emoji
	}
	return ""
}

// Boosts reports whether the weather boosts the given type
func (w Weather) Boosts(t Type) bool {
	for _, boosted := range weatherBoosts[w] {
		if boosted == t {
			return true
		}
	}
	return false
}

// WeatherForType returns the weather conditions that boost a type
func WeatherForType(t Type) []Weather {
	var result []Weather
	for weather, types := range weatherBoosts {
		for _, boosted := range types {
			if boosted == t {
				result = append(result, weather)
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// WeatherEmojisForTypes returns the emojis of every weather condition that
// boosts any of the given types. Clear weather is excluded: events run
// before nightfall, so the night-sky emoji never applies.
func WeatherEmojisForTypes(types []Type) string {
	seen := make(map[Weather]bool)
	for _, t := range types {
		for _, w := range WeatherForType(t) {
			if w == WeatherClear {
				continue
			}
			seen[w] = true
		}
	}

	weathers := make([]Weather, 0, len(seen))
	for w := range seen {
		weathers = append(weathers, w)
	}
	sort.Slice(weathers, func(i, j int) bool { return weathers[i] < weathers[j] })

	var sb strings.Builder
	for _, w := range weathers {
		sb.WriteString(w.Emoji())
	}
	return sb.String()
}
