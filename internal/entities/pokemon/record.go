// Package pokemon implements the Pokémon Go domain entities
package pokemon

import (
	"fmt"
	"time"
)

// Record holds the Pokémon Go data needed to announce an event.
// NOTE: This is a data-only struct, immutable once fetched. CP values are
// computed at fetch time by the gamemath package and stored alongside the
// base stats so cached records render without recomputation.
type Record struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Types       []Type    `json:"types"`
	BaseAttack  int       `json:"base_attack"`
	BaseDefense int       `json:"base_defense"`
	BaseStamina int       `json:"base_stamina"`

	// CP with perfect IVs at the levels the announcement templates use
	CPLevel20 int `json:"cp_level_20"`
	CPLevel25 int `json:"cp_level_25"`
	CPLevel30 int `json:"cp_level_30"`
	CPLevel40 int `json:"cp_level_40"`
	MaxCP     int `json:"max_cp"`

	IsShinyAvailable bool   `json:"is_shiny_available"`
	IsReleased       bool   `json:"is_released"`
	Rarity           string `json:"rarity,omitempty"`
	Form             string `json:"form"`
	BuddyDistance    int    `json:"buddy_distance,omitempty"`
	CandyToEvolve    int    `json:"candy_to_evolve,omitempty"`

	// FetchedAt records when the data was pulled from the API. Cached
	// records keep it for display; it never drives expiry.
	FetchedAt time.Time `json:"fetched_at"`
}

// DexNumber returns the zero-padded Pokédex number, e.g. "#007"
func (r *Record) DexNumber() string {
	return fmt.Sprintf("#%03d", r.ID)
}

var raritySpanish = map[string]string{
	"Standard":    "Estándar",
	"Legendary":   "Legendario",
	"Mythic":      "Mítico",
	"Ultra beast": "Ultraente",
}

// RaritySpanish returns the Spanish name of the rarity tier the API
// reports, or "Desconocida" when the tier is missing or unknown
func (r *Record) RaritySpanish() string {
	if name, ok := raritySpanish[r.Rarity]; ok {
		return name
	}
	return "Desconocida"
}
