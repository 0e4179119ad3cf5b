package templates

import (
	"strconv"

	"github.com/teamvirrey/meetup-announcer/internal/entities/pokemon"
	"github.com/teamvirrey/meetup-announcer/internal/gamemath"
)

// RecordVars builds the template variables every announcement shares:
// identity, typing, base stats, and formatted CP values.
func RecordVars(rec *pokemon.Record) map[string]string {
	return map[string]string{
		"pokemon_name": rec.Name,
		"pokemon_id":   rec.DexNumber(),
		"type_info":    pokemon.FormatTypeInfo(rec.Types),
		"base_attack":  strconv.Itoa(rec.BaseAttack),
		"base_defense": strconv.Itoa(rec.BaseDefense),
		"base_stamina": strconv.Itoa(rec.BaseStamina),
		"cp_level_20":  gamemath.FormatCP(rec.CPLevel20),
		"cp_level_25":  gamemath.FormatCP(rec.CPLevel25),
		"cp_level_30":  gamemath.FormatCP(rec.CPLevel30),
		"cp_level_40":  gamemath.FormatCP(rec.CPLevel40),
	}
}

// RenderDynamaxMonday renders the Dynamax Monday announcement
func (m *Manager) RenderDynamaxMonday(rec *pokemon.Record, eventDate string, shinyAvailable bool) (string, error) {
	vars := RecordVars(rec)
	vars["monday_date"] = eventDate
	vars["shiny_text"] = ShinyText(shinyAvailable, EventDynamax)
	return m.Render("dynamax_monday", vars)
}

// RenderSpotlightHour renders the Spotlight Hour announcement
func (m *Manager) RenderSpotlightHour(rec *pokemon.Record, eventDate, bonusDescription, bonusDetails string, shinyAvailable bool) (string, error) {
	vars := RecordVars(rec)
	vars["tuesday_date"] = eventDate
	vars["bonus_description"] = bonusDescription
	vars["bonus_details"] = bonusDetails
	vars["shiny_text"] = ShinyText(shinyAvailable, EventSpotlight)
	return m.Render("spotlight_hour", vars)
}
