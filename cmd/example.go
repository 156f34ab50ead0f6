package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anmacmillan/pensionloss/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write a worked example case file to get started",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("output")
		if err := config.SaveCaseFile(config.ExampleCaseFile(), path); err != nil {
			return err
		}
		fmt.Println("Example case file written to", path)
		fmt.Println("Run: pensionloss calc --input", path)
		return nil
	},
}

func init() {
	exampleCmd.Flags().StringP("output", "o", "case.yaml", "where to write the example case file")
	rootCmd.AddCommand(exampleCmd)
}
