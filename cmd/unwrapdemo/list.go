package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	nameColor = color.New(color.FgGreen, color.Bold)
	kindColor = color.New(color.FgYellow)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scenarios",
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarios, err := allScenarios(cmd)
		if err != nil {
			return err
		}
		for _, s := range scenarios {
			fmt.Printf("%s  %s (%s)\n", s.ID, nameColor.Sprint(s.Name), kindColor.Sprint(s.Kind))
		}
		return nil
	},
}
