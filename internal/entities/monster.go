package entities

// Monster is a live monster instance at a location. Powers mutate it in
// place; banish and split remove it from its location entirely.
type Monster struct {
	ID     string `json:"id"`
	TypeID string `json:"type_id"`
	Name   string `json:"name"`
	Alive  bool   `json:"alive"`
	Item   *Item  `json:"item,omitempty"`
}

// NewMonster creates a living monster
func NewMonster(id, typeID, name string) *Monster {
	return &Monster{
		ID:     id,
		TypeID: typeID,
		Name:   name,
		Alive:  true,
	}
}

// Party is the caller-owned player group state the engine reads and nudges
type Party struct {
	Players    int `json:"players"`
	ScoutRange int `json:"scout_range"`
}

// NewParty creates a party of the given size
func NewParty(players, scoutRange int) *Party {
	if players < 1 {
		players = 1
	}
	return &Party{Players: players, ScoutRange: scoutRange}
}

// PlayerCount returns the number of players, never less than one
func (p *Party) PlayerCount() int {
	if p.Players < 1 {
		return 1
	}
	return p.Players
}

// ExtendScoutRange widens the party's scouting radius
func (p *Party) ExtendScoutRange(units int) {
	p.ScoutRange += units
}
