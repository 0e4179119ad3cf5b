package event

import (
	"time"

	"github.com/teamvirrey/meetup-announcer/internal/dates"
	"github.com/teamvirrey/meetup-announcer/internal/entities/pokemon"
)

// MaxKind is the Max form featured on a battle day
type MaxKind string

// Max forms
const (
	MaxKindDynamax    MaxKind = "Dynamax"
	MaxKindGigantamax MaxKind = "Gigantamax"
)

// Spotlight Hour bonus kinds
const (
	BonusCatchCandy    = "catch_candy"
	BonusEvolutionXP   = "evolution_xp"
	BonusCatchXP       = "catch_xp"
	BonusCatchStardust = "catch_stardust"
	BonusTransferCandy = "transfer_candy"
)

// Bonus describes a Spotlight Hour bonus
type Bonus struct {
	Kind        string
	Description string
	Details     string
}

// SpotlightBonuses returns the rotation of Spotlight Hour bonuses in
// menu order
func SpotlightBonuses() []Bonus {
	return []Bonus{
		{
			Kind:        BonusCatchCandy,
			Description: "✨X2 caramelos por captura ✨",
			Details:     "Obtendrán el doble de caramelos por cada captura durante la hora destacada.",
		},
		{
			Kind:        BonusEvolutionXP,
			Description: "✨X2 XP por evolución ✨",
			Details: "XP por evolución: 1000 XP por evolución normal, 2000 XP por nueva " +
				"entrada en su Pokédex (4000 XP y 6000 XP, respectivamente, con huevo " +
				"suerte activo 🥚).",
		},
		{
			Kind:        BonusCatchXP,
			Description: "✨X2 XP por captura ✨",
			Details: "XP por captura: hasta 2340 XP por captura (4680 XP con huevo suerte " +
				"🥚, por cada captura con tiro excelente, bola curva, y primera bola.",
		},
		{
			Kind:        BonusCatchStardust,
			Description: "✨X2 polvo estelar por captura ✨",
			Details:     "Obtendrán el doble de polvo estelar por cada captura durante la hora destacada.",
		},
		{
			Kind:        BonusTransferCandy,
			Description: "✨X2 caramelos por transferencia ✨",
			Details:     "Obtendrán el doble de caramelos al transferir Pokémon durante la hora destacada.",
		},
	}
}

// GetPokemonInput defines the input for looking up a Pokémon
type GetPokemonInput struct {
	Name string
	// ForceRefresh bypasses the cache and fetches from the API
	ForceRefresh bool
}

// GetPokemonOutput defines the output for looking up a Pokémon
type GetPokemonOutput struct {
	Record *pokemon.Record
	// FromCache reports whether the record came from the cache
	FromCache bool
	// Stale is set when the API was unreachable and a cached record
	// was served instead
	Stale bool
}

// SearchPokemonInput defines the input for a name search
type SearchPokemonInput struct {
	PartialName string
	// Limit caps the number of suggestions; zero means no cap
	Limit int
}

// SearchPokemonOutput defines the output for a name search
type SearchPokemonOutput struct {
	Names []string
}

// DynamaxMondayInput defines the input for a Dynamax Monday announcement
type DynamaxMondayInput struct {
	Name string
	// ShinyAvailable overrides the API shiny flag when non-nil
	ShinyAvailable *bool
	ForceRefresh   bool
}

// DynamaxMondayOutput defines the output for a Dynamax Monday announcement
type DynamaxMondayOutput struct {
	Text      string
	Record    *pokemon.Record
	EventDate dates.Occurrence
}

// SpotlightHourInput defines the input for a Spotlight Hour announcement
type SpotlightHourInput struct {
	Name  string
	Bonus Bonus
	// BaseStardust is the per-catch stardust used for the
	// catch_stardust bonus math; ignored for other bonuses
	BaseStardust   int
	ShinyAvailable *bool
	ForceRefresh   bool
}

// SpotlightHourOutput defines the output for a Spotlight Hour announcement
type SpotlightHourOutput struct {
	Text      string
	Record    *pokemon.Record
	EventDate dates.Occurrence
}

// LegendaryHourInput defines the input for a Legendary Hour announcement.
// More than one name produces the multi-Pokémon rendering.
type LegendaryHourInput struct {
	Names   []string
	Weekday time.Weekday
	// ShinyOverrides maps a Pokémon name (case-insensitive) to an
	// availability override; absent names use the API shiny flag
	ShinyOverrides map[string]bool
	ForceRefresh   bool
}

// LegendaryHourOutput defines the output for a Legendary Hour announcement
type LegendaryHourOutput struct {
	Text      string
	Records   []*pokemon.Record
	EventDate dates.Occurrence
}

// MaxBattleDayInput defines the input for a Max Battle Day announcement
type MaxBattleDayInput struct {
	Name string
	// Day must be Saturday or Sunday
	Day time.Weekday
	// Kind defaults to Dynamax
	Kind           MaxKind
	ShinyAvailable *bool
	ForceRefresh   bool
}

// MaxBattleDayOutput defines the output for a Max Battle Day announcement
type MaxBattleDayOutput struct {
	Text      string
	Record    *pokemon.Record
	EventDate dates.Occurrence
}

// RaidDayInput defines the input for a Raid Day announcement
type RaidDayInput struct {
	Name string
	// Day must be Saturday or Sunday
	Day            time.Weekday
	ShinyAvailable *bool
	ForceRefresh   bool
}

// RaidDayOutput defines the output for a Raid Day announcement
type RaidDayOutput struct {
	Text      string
	Record    *pokemon.Record
	EventDate dates.Occurrence
}

// SummaryInput defines the input for a Pokémon summary
type SummaryInput struct {
	Name         string
	ForceRefresh bool
}

// SummaryOutput defines the output for a Pokémon summary
type SummaryOutput struct {
	Text   string
	Record *pokemon.Record
}
