package harmonics

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-torcurve/dsp/core"
)

const (
	defaultFFTSize      = 4096
	defaultCycles       = 16
	defaultAmplitude    = 1.0
	defaultMaxHarmonics = 9

	minFFTSize = 64
)

var (
	ErrNilShaper        = errors.New("harmonics: shaper must not be nil")
	ErrInvalidFFTSize   = errors.New("harmonics: FFT size must be a power of two >= 64")
	ErrInvalidCycles    = errors.New("harmonics: cycles must keep the highest harmonic below Nyquist")
	ErrInvalidAmplitude = errors.New("harmonics: amplitude must be finite and > 0")
)

// Config holds harmonic analysis parameters. Zero fields take defaults.
type Config struct {
	// FFTSize is the frame length; a power of two >= 64. Default 4096.
	FFTSize int
	// Cycles is the number of sine periods per frame and therefore the
	// fundamental bin. Default 16.
	Cycles int
	// Amplitude is the peak level of the driving sine. Default 1.
	Amplitude float64
	// MaxHarmonics is the highest harmonic order reported. Default 9.
	MaxHarmonics int
}

// Result holds the harmonic signature of a shaper.
type Result struct {
	// Fundamental is the peak amplitude of the output at the drive frequency.
	Fundamental float64
	// DC is the mean of the output frame.
	DC float64
	// Harmonics[i] is the amplitude of harmonic order i+2 relative to the
	// fundamental.
	Harmonics []float64
	// THD is the root-sum-square of all reported harmonics relative to the
	// fundamental.
	THD    float64
	THDdB  float64
	OddHD  float64
	EvenHD float64
}

// Analyze drives shaper with one frame of sine and returns its harmonic
// signature. A shaper that produces no fundamental yields a zero Result
// (apart from DC) and no error.
func Analyze(shaper func(float64) float64, cfg Config) (Result, error) {
	if shaper == nil {
		return Result{}, ErrNilShaper
	}

	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return Result{}, err
	}

	n := cfg.FFTSize
	in := make([]complex128, n)
	step := 2 * math.Pi * float64(cfg.Cycles) / float64(n)

	for i := range in {
		in[i] = complex(shaper(cfg.Amplitude*math.Sin(step*float64(i))), 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("harmonics: fft plan: %w", err)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("harmonics: forward fft: %w", err)
	}

	return signature(out, cfg), nil
}

func signature(spectrum []complex128, cfg Config) Result {
	n := float64(len(spectrum))
	res := Result{DC: real(spectrum[0]) / n}

	res.Fundamental = 2 * cmplx.Abs(spectrum[cfg.Cycles]) / n
	if res.Fundamental <= 0 || !core.IsFinite(res.Fundamental) {
		res.Fundamental = 0
		return res
	}

	var sumSq, oddSq, evenSq float64

	res.Harmonics = make([]float64, 0, cfg.MaxHarmonics-1)
	for k := 2; k <= cfg.MaxHarmonics; k++ {
		level := 2 * cmplx.Abs(spectrum[k*cfg.Cycles]) / n / res.Fundamental
		res.Harmonics = append(res.Harmonics, level)

		sq := level * level
		sumSq += sq
		if k%2 == 0 {
			evenSq += sq
		} else {
			oddSq += sq
		}
	}

	res.THD = math.Sqrt(sumSq)
	res.THDdB = core.LinearToDB(res.THD)
	res.OddHD = math.Sqrt(oddSq)
	res.EvenHD = math.Sqrt(evenSq)

	return res
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.FFTSize == 0 {
		cfg.FFTSize = defaultFFTSize
	}

	if cfg.Cycles == 0 {
		cfg.Cycles = defaultCycles
	}

	if cfg.Amplitude == 0 {
		cfg.Amplitude = defaultAmplitude
	}

	if cfg.MaxHarmonics == 0 {
		cfg.MaxHarmonics = defaultMaxHarmonics
	}

	if cfg.FFTSize < minFFTSize || cfg.FFTSize&(cfg.FFTSize-1) != 0 {
		return cfg, fmt.Errorf("%w: %d", ErrInvalidFFTSize, cfg.FFTSize)
	}

	if cfg.Amplitude < 0 || !core.IsFinite(cfg.Amplitude) {
		return cfg, fmt.Errorf("%w: %f", ErrInvalidAmplitude, cfg.Amplitude)
	}

	if cfg.MaxHarmonics < 2 {
		return cfg, fmt.Errorf("harmonics: max harmonics must be >= 2: %d", cfg.MaxHarmonics)
	}

	if cfg.Cycles < 1 || cfg.Cycles*cfg.MaxHarmonics >= cfg.FFTSize/2 {
		return cfg, fmt.Errorf("%w: %d cycles, %d harmonics, FFT size %d",
			ErrInvalidCycles, cfg.Cycles, cfg.MaxHarmonics, cfg.FFTSize)
	}

	return cfg, nil
}
