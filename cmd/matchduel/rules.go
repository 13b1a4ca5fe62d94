package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/matchduel/internal/games/match3/core"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show what each special tile does",
	Long: `Lists the special tile rules by base value. A run of four or more
spawns a special of the run's base; when a special is cleared it fires its
area and emits its effects to the combat layer.`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

func runRules(cmd *cobra.Command, args []string) {
	fmt.Printf("  %-6s  %-18s  %-11s  %s\n", "Base", "Name", "Area", "Effects")
	fmt.Printf("  %-6s  %-18s  %-11s  %s\n", "----", "----", "----", "-------")

	for _, e := range core.RuleTable() {
		base := fmt.Sprint(e.Base)
		if e.Default {
			base = "other"
		}

		area := e.Rule.Area.String()
		if e.Rule.RandomClears > 0 {
			area = fmt.Sprintf("%d random", e.Rule.RandomClears)
		}

		effects := make([]string, 0, len(e.Rule.Effects))
		for _, eff := range e.Rule.Effects {
			effects = append(effects, fmt.Sprint(eff))
		}
		fmt.Printf("  %-6s  %-18s  %-11s  %s\n", base, e.Rule.Name, area, strings.Join(effects, ", "))
	}
}
