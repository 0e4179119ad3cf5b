// Package gamemath implements the Pokémon Go combat power formula
package gamemath

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/teamvirrey/meetup-announcer/internal/errors"
)

// maxIV is the per-stat individual value used for displayed CP ranges.
// Announcements always quote the perfect-IV ceiling.
const maxIV = 15

// minCP is the floor the game applies to every calculation
const minCP = 10

// Latin American Spanish groups thousands with commas ("2,430"), which is
// what the community posts use. European Spanish would print "2.430".
var cpPrinter = message.NewPrinter(language.MustParse("es-MX"))

// CPAtLevel computes the combat power of a Pokémon with perfect IVs at
// the given level:
//
//	CP = floor((atk+15) × √(def+15) × √(sta+15) × CPM(level)² / 10)
//
// with a minimum of 10. Base stats must be positive and the level must be
// a half-integer covered by the CPM table.
func CPAtLevel(baseAttack, baseDefense, baseStamina int, level float64) (int, error) {
	if baseAttack <= 0 || baseDefense <= 0 || baseStamina <= 0 {
		return 0, errors.InvalidArgumentf(
			"base stats must be positive, got attack=%d defense=%d stamina=%d",
			baseAttack, baseDefense, baseStamina)
	}

	cpm, ok := CPMultiplier(level)
	if !ok {
		return 0, errors.InvalidArgumentf("level %.1f is not in the CPM table (1-51 in half steps)", level)
	}

	attack := float64(baseAttack + maxIV)
	defense := float64(baseDefense + maxIV)
	stamina := float64(baseStamina + maxIV)

	cp := int(attack * math.Sqrt(defense) * math.Sqrt(stamina) * cpm * cpm / 10)
	if cp < minCP {
		cp = minCP
	}
	return cp, nil
}

// FormatCP renders a CP value with thousands separators, e.g. "2,430"
func FormatCP(cp int) string {
	return cpPrinter.Sprintf("%d", cp)
}
