package gamedata

import "github.com/gdamore/tcell/v2"

// SpeciesDef is one row of the monster species table. Health and damage
// scale linearly with the dungeon difficulty.
type SpeciesDef struct {
	ID             string `json:"id"`             // Unique identifier (e.g., "goblin")
	Name           string `json:"name"`           // Display name (e.g., "Goblin")
	Color          string `json:"color"`          // Hex color code (e.g., "#00FF00")
	HealthPerLevel int    `json:"healthPerLevel"` // Health at difficulty 1
	DamagePerLevel int    `json:"damagePerLevel"` // Damage at difficulty 1
}

// Health returns the species health at the given difficulty.
func (s *SpeciesDef) Health(difficulty int) int {
	return s.HealthPerLevel * difficulty
}

// Damage returns the species damage at the given difficulty.
func (s *SpeciesDef) Damage(difficulty int) int {
	return s.DamagePerLevel * difficulty
}

// TCellColor returns the color as a tcell.Color.
func (s *SpeciesDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}

// SpeciesFile represents the structure of monsters.json.
type SpeciesFile struct {
	Species []SpeciesDef `json:"species"`
}

// LoadSpecies loads species definitions from the embedded monsters.json file.
func LoadSpecies() ([]SpeciesDef, error) {
	file, err := Load[SpeciesFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Species, nil
}
