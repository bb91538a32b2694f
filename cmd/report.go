package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tabshield/tabshield-cli/internal/dataset"
	"github.com/tabshield/tabshield-cli/internal/files"
	"github.com/tabshield/tabshield-cli/internal/report"
	"github.com/tabshield/tabshield-cli/internal/summarize"
)

var (
	rptOutputDir string
	rptFormat    string
	rptBins      int
	rptDateBin   string
	rptQuiet     bool
)

type reportOptions struct {
	OutputDir string
	Format    string
	Summarize summarize.Options
	Quiet     bool
}

var reportCmd = &cobra.Command{
	Use:   "report <files or globs...>",
	Short: "Generate one disclosure-safe summary report per input dataset",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opt := reportOptions{
			OutputDir: rptOutputDir,
			Format:    rptFormat,
			Quiet:     rptQuiet,
			Summarize: summarize.Options{HistogramBins: rptBins, DateBin: rptDateBin},
		}
		if cfg != nil {
			if !cmd.Flags().Changed("format") && cfg.OutputFormat != "" {
				opt.Format = cfg.OutputFormat
			}
			if !cmd.Flags().Changed("bins") && cfg.HistogramBins > 0 {
				opt.Summarize.HistogramBins = cfg.HistogramBins
			}
			if !cmd.Flags().Changed("date-bin") && cfg.DateBin != "" {
				opt.Summarize.DateBin = cfg.DateBin
			}
			if opt.OutputDir == "" {
				opt.OutputDir = cfg.ReportsDir
			}
		}
		if opt.OutputDir == "" {
			return fmt.Errorf("--output-dir is required (or set reports_dir in config)")
		}
		return runReport(args, opt)
	},
}

func runReport(args []string, opt reportOptions) error {
	ext := ""
	switch opt.Format {
	case "html":
		ext = ".html"
	case "markdown", "md":
		ext = ".md"
	default:
		return fmt.Errorf("unsupported --format: %s (use 'html'|'markdown')", opt.Format)
	}

	paths, err := files.Discover(args)
	if err != nil {
		return err
	}
	if err := files.EnsureDir(opt.OutputDir); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}

	man := report.NewManifest()
	failed := 0
	for i, path := range paths {
		if !opt.Quiet {
			fmt.Printf("[%d/%d] Processing %s...\n", i+1, len(paths), filepath.Base(path))
		}
		out, err := generateOne(path, opt, ext)
		o := report.Outcome{Name: dataset.Stem(path), Source: path}
		if err != nil {
			// One dataset's failure must not stop the rest of the run.
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", dataset.Stem(path), err)
			o.Error = err.Error()
			failed++
		} else {
			o.Output = out
			if !opt.Quiet {
				fmt.Printf("✓ Wrote %s\n", filepath.Base(out))
			}
		}
		man.Add(o)
	}
	if err := man.Write(opt.OutputDir); err != nil {
		return err
	}
	if failed == len(paths) {
		return fmt.Errorf("all %d datasets failed", failed)
	}
	return nil
}

func generateOne(path string, opt reportOptions, ext string) (string, error) {
	ds, err := dataset.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum, err := summarize.Dataset(ds, opt.Summarize)
	if err != nil {
		return "", err
	}
	var doc string
	if ext == ".html" {
		doc, err = report.HTML(sum)
		if err != nil {
			return "", err
		}
	} else {
		doc = report.Markdown(sum)
	}
	out := filepath.Join(opt.OutputDir, ds.Name+ext)
	if err := files.SafeWriteFile(out, []byte(doc)); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&rptOutputDir, "output-dir", "o", "", "directory to write reports into")
	reportCmd.Flags().StringVar(&rptFormat, "format", "html", "report format: 'html' | 'markdown'")
	reportCmd.Flags().IntVar(&rptBins, "bins", 10, "number of histogram bins for numeric columns")
	reportCmd.Flags().StringVar(&rptDateBin, "date-bin", "month", "calendar granularity for date columns: 'month' | 'year'")
	reportCmd.Flags().BoolVar(&rptQuiet, "quiet", false, "suppress progress output")
}
