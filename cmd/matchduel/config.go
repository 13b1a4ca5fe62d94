package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/matchduel/internal/config"
)

var flagConfigWrite string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or write the effective config",
	Long: `Prints the configuration after applying the search order:
--config path, ~/.matchduel/configs/match.yaml, ./configs/match.yaml and
finally the built-in defaults.

Examples:
  matchduel config
  matchduel config --write ./configs/match.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigWrite, "write", "", "Write the effective config to this path")
}

func runConfig(cmd *cobra.Command, args []string) {
	s := openSession()

	if flagConfigWrite != "" {
		if err := config.Save(flagConfigWrite, s.cfg); err != nil {
			fail("%v", err)
		}
		s.logger.Info("config written", "path", flagConfigWrite)
		return
	}

	out, err := yaml.Marshal(s.cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	fmt.Print(string(out))
}
