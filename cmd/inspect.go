package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabshield/tabshield-cli/internal/dataset"
	"github.com/tabshield/tabshield-cli/internal/report"
	"github.com/tabshield/tabshield-cli/internal/summarize"
)

var (
	insBins    int
	insDateBin string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print a dataset's disclosure-safe summary to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := summarize.Options{HistogramBins: insBins, DateBin: insDateBin}
		if cfg != nil {
			if !cmd.Flags().Changed("bins") && cfg.HistogramBins > 0 {
				opt.HistogramBins = cfg.HistogramBins
			}
			if !cmd.Flags().Changed("date-bin") && cfg.DateBin != "" {
				opt.DateBin = cfg.DateBin
			}
		}
		ds, err := dataset.ReadFile(args[0])
		if err != nil {
			return err
		}
		sum, err := summarize.Dataset(ds, opt)
		if err != nil {
			return err
		}
		fmt.Print(report.Markdown(sum))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&insBins, "bins", 10, "number of histogram bins for numeric columns")
	inspectCmd.Flags().StringVar(&insDateBin, "date-bin", "month", "calendar granularity for date columns: 'month' | 'year'")
}
