package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/soravia/notedense/analyzer"
	"github.com/soravia/notedense/fetch"
	"github.com/soravia/notedense/midi"
	"github.com/soravia/notedense/model"
	"github.com/soravia/notedense/osu"
	"github.com/soravia/notedense/util"
	"github.com/spf13/cobra"
)

var (
	npsBlocks    int
	npsFrequency float64
	npsJson      bool
)

func init() {
	npsCmd.Flags().IntVar(&npsBlocks, "blocks", 0, "split the map into this many equal windows")
	npsCmd.Flags().Float64Var(&npsFrequency, "frequency", 0, "sample local density at this rate in Hz")
	npsCmd.Flags().BoolVar(&npsJson, "json", false, "emit results as JSON")
	rootCmd.AddCommand(npsCmd)
}

var npsCmd = &cobra.Command{
	Use:   "nps <file-or-url>",
	Short: "Computes note density",
	Long:  `Computes average NPS and, optionally, a local density distribution`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNps(args[0])
	},
}

// loadBeatmap reads onsets from a local .osu or .mid/.midi file, or
// downloads a .osu file when given a URL.
func loadBeatmap(src string) (model.Beatmap, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		content, err := fetch.Download(src)
		if err != nil {
			return model.Beatmap{}, err
		}
		return osu.Parse(strings.NewReader(content))
	}
	if strings.HasSuffix(src, ".mid") || strings.HasSuffix(src, ".midi") {
		return midi.ExtractOnsets(src)
	}
	return osu.ParseFile(src)
}

// analyze runs the density core over a beatmap. The map's play length
// is measured first-to-last onset and onsets are shifted so the first
// sits at 0. width is the window width of the returned distribution in
// milliseconds; a frequency takes precedence over a block count.
func analyze(b model.Beatmap, blocks int, frequency float64) (avg float64, dist []float64, width float64, err error) {
	onsets := b.RelativeOnsets()
	duration, _ := b.PlayLength()

	avg, err = analyzer.AvgNPS(onsets, duration)
	if err != nil {
		return 0, nil, 0, err
	}

	switch {
	case frequency != 0:
		width = 1000.0 / frequency
		dist, err = analyzer.ByFrequency(onsets, duration, frequency)
	case blocks != 0:
		width = duration / float64(blocks)
		dist, err = analyzer.Distribution(onsets, duration, blocks)
	}
	if err != nil {
		return 0, nil, 0, err
	}
	return avg, dist, width, nil
}

func toKeyValues(dist []float64, width float64) []model.KeyValue {
	res := make([]model.KeyValue, 0, len(dist))
	for i, nps := range dist {
		res = append(res, model.KeyValue{Key: int(float64(i) * width), Value: nps})
	}
	return res
}

func runNps(src string) error {
	b, err := loadBeatmap(src)
	if err != nil {
		return err
	}

	avg, dist, width, err := analyze(b, npsBlocks, npsFrequency)
	if err != nil {
		return err
	}

	if npsJson {
		out := model.AnalyzeResponse{
			AvgNps:       avg,
			Distribution: toKeyValues(dist, width),
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	fmt.Printf("notes: %v\n", len(b.Onsets))
	fmt.Printf("avg nps: %.3f\n", avg)
	if len(dist) > 0 {
		peak := dist[0]
		for _, v := range dist[1:] {
			peak = util.Max(peak, v)
		}
		fmt.Printf("windows: %v\n", len(dist))
		fmt.Printf("peak nps: %.3f\n", peak)
		for _, kv := range toKeyValues(dist, width) {
			fmt.Printf("%8dms %.3f\n", kv.Key, kv.Value)
		}
	}
	return nil
}
