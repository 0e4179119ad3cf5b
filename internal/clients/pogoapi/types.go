package pogoapi

// Wire types for the PoGoAPI.net bulk endpoints. Each endpoint returns
// either a JSON object keyed by Pokédex id or a list of per-form entries.

// nameEntry is a value of pokemon_names.json (object keyed by id)
type nameEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// statsEntry is an element of pokemon_stats.json
type statsEntry struct {
	PokemonID   int    `json:"pokemon_id"`
	PokemonName string `json:"pokemon_name"`
	Form        string `json:"form"`
	BaseAttack  int    `json:"base_attack"`
	BaseDefense int    `json:"base_defense"`
	BaseStamina int    `json:"base_stamina"`
}

// typesEntry is an element of pokemon_types.json
type typesEntry struct {
	PokemonID   int      `json:"pokemon_id"`
	PokemonName string   `json:"pokemon_name"`
	Form        string   `json:"form"`
	Type        []string `json:"type"`
}

// maxCPEntry is an element of pokemon_max_cp.json
type maxCPEntry struct {
	PokemonID   int    `json:"pokemon_id"`
	PokemonName string `json:"pokemon_name"`
	Form        string `json:"form"`
	MaxCP       int    `json:"max_cp"`
}

// rarityEntry is an element of the lists in pokemon_rarity.json
// (object keyed by rarity tier)
type rarityEntry struct {
	PokemonID   int    `json:"pokemon_id"`
	PokemonName string `json:"pokemon_name"`
}

// idEntry is an element of the lists in pokemon_buddy_distances.json and
// pokemon_candy_to_evolve.json (objects keyed by distance / candy amount)
type idEntry struct {
	PokemonID int `json:"pokemon_id"`
}
