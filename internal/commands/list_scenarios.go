package commands

import (
	"fmt"

	"github.com/lixitrixi/planning/internal/scenarios"
)

// ListScenariosCommand prints every registered scenario and its description.
type ListScenariosCommand struct{}

// Run executes the list-scenarios command.
func (cmd *ListScenariosCommand) Run() error {
	for _, s := range scenarios.All() {
		fmt.Printf("%-12s %s\n", s.Name, s.Description)
	}
	return nil
}
