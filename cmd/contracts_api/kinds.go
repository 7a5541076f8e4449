package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/talentledger/contracts/internal/catalog"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List every registered contract kind",
	RunE: func(_ *cobra.Command, _ []string) error {
		for _, kind := range catalog.Default().Kinds() {
			fmt.Println(kind)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}
