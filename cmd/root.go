package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mensa-cli",
	Short: "A CLI and TUI for canteen menus",
	Long: `mensa-cli is an application for hungry students to browse the canteens
listed on openmensa.org and check what is being served today.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
