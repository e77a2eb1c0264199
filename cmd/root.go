package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notedense",
	Short: "Beatmap note density analyzer",
	Long:  `Computes average NPS and local note density distributions for rhythm game beatmaps.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
