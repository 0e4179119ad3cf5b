package pokemon

import "strings"

// Type is one of the 18 elemental Pokémon types
type Type string

// Pokémon types
const (
	TypeNormal   Type = "normal"
	TypeFire     Type = "fire"
	TypeWater    Type = "water"
	TypeElectric Type = "electric"
	TypeGrass    Type = "grass"
	TypeIce      Type = "ice"
	TypeFighting Type = "fighting"
	TypePoison   Type = "poison"
	TypeGround   Type = "ground"
	TypeFlying   Type = "flying"
	TypePsychic  Type = "psychic"
	TypeBug      Type = "bug"
	TypeRock     Type = "rock"
	TypeGhost    Type = "ghost"
	TypeDragon   Type = "dragon"
	TypeDark     Type = "dark"
	TypeSteel    Type = "steel"
	TypeFairy    Type = "fairy"
)

var spanishNames = map[Type]string{
	TypeNormal:   "Normal",
	TypeFire:     "Fuego",
	TypeWater:    "Agua",
	TypeElectric: "Eléctrico",
	TypeGrass:    "Planta",
	TypeIce:      "Hielo",
	TypeFighting: "Lucha",
	TypePoison:   "Veneno",
	TypeGround:   "Tierra",
	TypeFlying:   "Volador",
	TypePsychic:  "Psíquico",
	TypeBug:      "Bicho",
	TypeRock:     "Roca",
	TypeGhost:    "Fantasma",
	TypeDragon:   "Dragón",
	TypeDark:     "Siniestro",
	TypeSteel:    "Acero",
	TypeFairy:    "Hada",
}

var typeEmojis = map[Type]string{
	TypeNormal:   "⚪",
	TypeFire:     "🔥",
	TypeWater:    "💧",
	TypeElectric: "⚡️",
	TypeGrass:    "🌿",
	TypeIce:      "❄️",
	TypeFighting: "🥊",
	TypePoison:   "☠️",
	TypeGround:   "🌋",
	TypeFlying:   "🪽",
	TypePsychic:  "🔮",
	TypeBug:      "🐛",
	TypeRock:     "🪨",
	TypeGhost:    "👻",
	TypeDragon:   "🐉",
	TypeDark:     "🌑",
	TypeSteel:    "⚙️",
	TypeFairy:    "🧚",
}

// ParseType normalizes an API type name to a Type. The second return is
// false for names outside the known eighteen.
func ParseType(name string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	_, ok := spanishNames[t]
	return t, ok
}

// SpanishName returns the Spanish display name for the type
func (t Type) SpanishName() string {
	if name, ok := spanishNames[t]; ok {
		return name
	}
	return "Desconocido"
}

// Emoji returns the emoji for the type
func (t Type) Emoji() string {
	if emoji, ok := typeEmojis[t]; ok {
		return emoji
	}
	return "❔"
}

// FormatTypeInfo renders a type list as Spanish names with emojis,
// e.g. "Agua 💧 / Volador 🪽"
func FormatTypeInfo(types []Type) string {
	if len(types) == 0 {
		return "Tipo desconocido"
	}

	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.SpanishName() + " " + t.Emoji()
	}
	return strings.Join(parts, " / ")
}
