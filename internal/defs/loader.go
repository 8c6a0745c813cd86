// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions reads a tower configuration file and replaces the TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	lib := make(map[int]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		if len(def.Levels) == 0 {
			return fmt.Errorf("tower definition %d (%s) has no levels", def.ID, def.Name)
		}
		lib[def.ID] = def
	}
	TowerLibrary = lib
	return nil
}

// LoadEnemyDefinitions reads an enemy configuration file and replaces the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := make(map[int]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		lib[def.ID] = def
	}
	EnemyLibrary = lib
	return nil
}
