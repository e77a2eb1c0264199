package cmd

import (
	"errors"
	"fmt"

	"github.com/soravia/notedense/analyzer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file-or-url>",
	Short: "Inspects a beatmap",
	Long:  `Inspects a beatmap`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(src string) error {
	b, err := loadBeatmap(src)
	if err != nil {
		return err
	}

	length, ok := b.PlayLength()
	if !ok {
		return errors.New("beatmap has no hit objects")
	}

	fmt.Printf("hit objects: %v\n", len(b.Onsets))
	fmt.Printf("first onset: %vms\n", b.Onsets[0])
	fmt.Printf("last onset: %vms\n", b.Onsets[len(b.Onsets)-1])
	fmt.Printf("play length: %vms\n", length)

	avg, err := analyzer.AvgNPS(b.RelativeOnsets(), length)
	if err != nil {
		return err
	}
	fmt.Printf("avg nps: %.3f\n", avg)
	return nil
}
