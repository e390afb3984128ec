// Command torinfo prints sampled torcurve values and the harmonic
// signature of a torcurve used as a waveshaper.
//
// Usage:
//
//	torinfo [flags]
//
// Examples:
//
//	torinfo -a 2 -b 0.5 -c 0
//	torinfo -a 3 -b 0.2 -c 0.8 -steps 20
//	torinfo -a 1 -c 0.7 -bipolar
//	torinfo -a 1 -b 0.3 -c 0.7 -harmonics
//	torinfo -info
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-torcurve/dsp/shape"
	"github.com/cwbudde/algo-torcurve/measure/harmonics"
)

func main() {
	a := flag.Float64("a", 0, "steepness control (applied as e^a)")
	b := flag.Float64("b", 0.5, "midpoint control, clamped to [0, 1]")
	c := flag.Float64("c", 0, "tail pinch control")
	steps := flag.Int("steps", 10, "number of intervals to sample (prints steps+1 rows)")
	bipolar := flag.Bool("bipolar", false, "sample the odd-symmetric waveshaper over [-1, 1]")
	harm := flag.Bool("harmonics", false, "print the harmonic signature instead of a table")
	fftSize := flag.Int("fft", 4096, "FFT size for -harmonics")
	cycles := flag.Int("cycles", 16, "sine cycles per frame for -harmonics")
	amplitude := flag.Float64("amplitude", 1, "peak drive level for -harmonics")
	info := flag.Bool("info", false, "print math backend and CPU features")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: torinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints sampled values of torcurve(x, a, b, c).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  torinfo -a 2 -b 0.5 -c 0\n")
		fmt.Fprintf(os.Stderr, "  torinfo -a 1 -c 0.7 -bipolar -steps 8\n")
		fmt.Fprintf(os.Stderr, "  torinfo -a 1 -b 0.3 -c 0.7 -harmonics\n")
		fmt.Fprintf(os.Stderr, "  torinfo -info\n")
	}
	flag.Parse()

	if *info {
		printInfo(os.Stdout)
		return
	}

	curve, err := shape.NewCurve(shape.WithSteepness(*a), shape.WithMidpoint(*b), shape.WithPinch(*c))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *harm {
		cfg := harmonics.Config{FFTSize: *fftSize, Cycles: *cycles, Amplitude: *amplitude}
		if err := printHarmonics(os.Stdout, curve, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *steps < 1 {
		fmt.Fprintf(os.Stderr, "error: steps must be >= 1: %d\n", *steps)
		os.Exit(1)
	}

	if err := printTable(os.Stdout, curve, *steps, *bipolar); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printInfo(w io.Writer) {
	f := cpu.DetectFeatures()
	fmt.Fprintf(w, "backend: %s\n", shape.Backend())
	fmt.Fprintf(w, "arch:    %s\n", f.Architecture)
	fmt.Fprintf(w, "sse2:    %t\n", f.HasSSE2)
	fmt.Fprintf(w, "avx2:    %t\n", f.HasAVX2)
	fmt.Fprintf(w, "neon:    %t\n", f.HasNEON)
}

// sampleGrid returns steps+1 drive values spanning [0, 1], or [-1, 1]
// when bipolar is set.
func sampleGrid(steps int, bipolar bool) []float64 {
	lo, span := 0.0, 1.0
	if bipolar {
		lo, span = -1, 2
	}

	xs := make([]float64, steps+1)
	for i := range xs {
		xs[i] = lo + span*float64(i)/float64(steps)
	}

	return xs
}

func printTable(w io.Writer, curve *shape.Curve, steps int, bipolar bool) error {
	eval := curve.Eval
	if bipolar {
		eval = curve.Bipolar
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "x\ty\n-\t-\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, x := range sampleGrid(steps, bipolar) {
		if _, err := fmt.Fprintf(tw, "%.6f\t%.17g\n", x, eval(x)); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func printHarmonics(w io.Writer, curve *shape.Curve, cfg harmonics.Config) error {
	res, err := harmonics.Analyze(curve.Bipolar, cfg)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Fundamental\t%.6f\nDC\t%.6f\nTHD\t%.4f%%\nTHD [dB]\t%.2f\nOdd HD\t%.4f%%\nEven HD\t%.4f%%\n",
		res.Fundamental, res.DC, res.THD*100, res.THDdB, res.OddHD*100, res.EvenHD*100); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	for i, h := range res.Harmonics {
		if _, err := fmt.Fprintf(tw, "H%d\t%.6f\n", i+2, h); err != nil {
			return fmt.Errorf("failed to write harmonic row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
