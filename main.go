package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootFlags struct {
	Times   string
	A       string
	B       string
	Format  string
	Out     string
	Workers int
	Top     int
}

var rootCmd = &cobra.Command{
	Use:   "arnold [image]",
	Short: "Brute-force an Arnold cat-map scrambled image",
	Long: `Sweeps the (iterations, a, b) parameter cube, decodes one candidate
image per triple in parallel and ranks all candidates by local-gradient
smoothness, so the plausible decodings end up on top of the report.

Ranges can be given as flags ("--times 0-10 --a 0-2 --b 0-2"); any range
left unset is asked for interactively.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	prompter := NewPrompter()

	var path string
	var err error
	if len(args) == 1 {
		path = CleanPathInput(args[0])
	} else if path, err = prompter.PromptPath(); err != nil {
		return err
	}

	src, err := LoadSquareImage(path)
	if err != nil {
		return err
	}
	log.Info().Str("image", path).Int("size", src.Rect.Dx()).Msg("image loaded")

	var times, aRange, bRange ParamRange
	if rootFlags.Times == "" && rootFlags.A == "" && rootFlags.B == "" {
		var source ParamSource = prompter
		if times, aRange, bRange, err = source.Ranges(); err != nil {
			return err
		}
	} else {
		if times, err = rangeFromFlagOrPrompt(rootFlags.Times, prompter,
			"  - iterations (e.g. '8' or '0-10'): ", false); err != nil {
			return err
		}
		if aRange, err = rangeFromFlagOrPrompt(rootFlags.A, prompter,
			"  - parameter a (e.g. '8' or '0-10'): ", true); err != nil {
			return err
		}
		if bRange, err = rangeFromFlagOrPrompt(rootFlags.B, prompter,
			"  - parameter b (e.g. '8' or '0-10'): ", true); err != nil {
			return err
		}
	}

	format := strings.ToLower(rootFlags.Format)
	if !candidateExts["."+format] {
		return fmt.Errorf("unsupported candidate format %q (want png or qoi)", rootFlags.Format)
	}

	outDir := rootFlags.Out
	if outDir == "" {
		outDir = filepath.Join(filepath.Dir(path), "Arnold_Output")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", outDir, err)
	}

	triples := EnumerateTriples(times, aRange, bRange)
	if len(triples) == 0 {
		fmt.Println("no parameter combinations to try")
		return nil
	}

	log.Info().
		Int("combinations", len(triples)).
		Str("times", times.String()).
		Str("a", aRange.String()).
		Str("b", bRange.String()).
		Str("output", outDir).
		Msg("starting sweep")

	res := RunSweep(src, triples, SweepConfig{
		OutputDir: outDir,
		Format:    format,
		Workers:   rootFlags.Workers,
		Progress:  os.Stderr,
	})
	fmt.Printf("sweep finished in %.2fs, %d/%d candidates saved to %s\n",
		res.Elapsed.Seconds(), res.Saved, res.Attempted, outDir)

	ranked, err := RankCandidates(outDir, rootFlags.Workers, os.Stderr)
	if err != nil {
		// The sweep output is already on disk; a broken analysis pass
		// must not turn the whole run into a failure.
		log.Error().Err(err).Msg("candidate analysis failed")
		return nil
	}
	reportTop(outDir, ranked, rootFlags.Top)
	return nil
}

func rangeFromFlagOrPrompt(flag string, p *Prompter, prompt string, allowNegative bool) (ParamRange, error) {
	if flag == "" {
		return p.promptRange(prompt, allowNegative)
	}
	r, err := ParseRange(flag)
	if err != nil {
		return ParamRange{}, err
	}
	if !allowNegative && r.Lo < 0 {
		return ParamRange{}, fmt.Errorf("iteration count must be non-negative, got %s", r)
	}
	return r, nil
}

func reportTop(dir string, ranked []ScoredCandidate, top int) {
	if top > len(ranked) {
		top = len(ranked)
	}
	FillCompressionRatios(dir, ranked[:top])
	PrintReport(os.Stdout, ranked, top)
}

var scrambleFlags struct {
	Times int64
	A     int64
	B     int64
	Out   string
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble <image>",
	Short: "Apply the forward cat map to a square image",
	Long: `Scrambles a square image by applying the forward Arnold cat map the
given number of times. The root command with the same triple restores the
original exactly.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if scrambleFlags.Times < 0 {
			return fmt.Errorf("iteration count must be non-negative, got %d", scrambleFlags.Times)
		}

		path := CleanPathInput(args[0])
		src, err := LoadSquareImage(path)
		if err != nil {
			return err
		}

		out := scrambleFlags.Out
		if out == "" {
			out = strings.TrimSuffix(path, filepath.Ext(path)) + "_scrambled.png"
		}

		scrambled := scrambleImage(src, scrambleFlags.Times, scrambleFlags.A, scrambleFlags.B)
		if err := SaveImage(scrambled, out); err != nil {
			return err
		}
		fmt.Printf("scrambled %s (k=%d a=%d b=%d) -> %s\n",
			path, scrambleFlags.Times, scrambleFlags.A, scrambleFlags.B, out)
		return nil
	},
}

var rankCmdFlags struct {
	Top     int
	Workers int
}

var rankCmd = &cobra.Command{
	Use:   "rank <directory>",
	Short: "Re-rank an existing candidate directory",
	Long: `Scores every candidate image in a directory produced by an earlier
sweep and prints the smoothest ones, without redoing the decode work.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := CleanPathInput(args[0])
		ranked, err := RankCandidates(dir, rankCmdFlags.Workers, os.Stderr)
		if err != nil {
			return err
		}
		reportTop(dir, ranked, rankCmdFlags.Top)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&rootFlags.Times, "times", "", "iteration range, e.g. '8' or '0-10' (prompted if unset)")
	rootCmd.Flags().StringVar(&rootFlags.A, "a", "", "parameter a range, e.g. '1' or '0-5' (prompted if unset)")
	rootCmd.Flags().StringVar(&rootFlags.B, "b", "", "parameter b range, e.g. '1' or '0-5' (prompted if unset)")
	rootCmd.Flags().StringVar(&rootFlags.Format, "format", "png", "candidate image format: png or qoi")
	rootCmd.Flags().StringVar(&rootFlags.Out, "out", "", "output directory (default: Arnold_Output next to the image)")
	rootCmd.Flags().IntVar(&rootFlags.Workers, "workers", 0, "worker pool size (default: one per CPU)")
	rootCmd.Flags().IntVar(&rootFlags.Top, "top", 5, "number of candidates to report")

	scrambleCmd.Flags().Int64Var(&scrambleFlags.Times, "times", 1, "number of forward passes")
	scrambleCmd.Flags().Int64Var(&scrambleFlags.A, "a", 1, "parameter a")
	scrambleCmd.Flags().Int64Var(&scrambleFlags.B, "b", 1, "parameter b")
	scrambleCmd.Flags().StringVar(&scrambleFlags.Out, "output", "", "output path (default: <image>_scrambled.png)")

	rankCmd.Flags().IntVar(&rankCmdFlags.Top, "top", 5, "number of candidates to report")
	rankCmd.Flags().IntVar(&rankCmdFlags.Workers, "workers", 0, "worker pool size (default: one per CPU)")

	rootCmd.AddCommand(scrambleCmd, rankCmd)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}
