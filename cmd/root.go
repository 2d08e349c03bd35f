package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-insights",
	Short: "AI-powered stock news and portfolio insights API",
}

func Execute() error {
	rootCmd.AddCommand(startCmd)
	return rootCmd.Execute()
}
