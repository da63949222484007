package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run one scenario, usually dying with a banner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarios, err := allScenarios(cmd)
		if err != nil {
			return err
		}
		for _, s := range scenarios {
			if s.Name == args[0] {
				fmt.Printf("running %s (%s)\n", nameColor.Sprint(s.Name), s.ID)
				s.run()
				return nil
			}
		}
		return fmt.Errorf("no scenario named %q", args[0])
	},
}
