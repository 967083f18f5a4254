package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/hupe1980/healpix"
	"github.com/hupe1980/healpix/coord"
)

const (
	envNside  = "HEALPIX_NSIDE"
	envScheme = "HEALPIX_SCHEME"

	defaultNside = 64
)

var errUsage = errors.New("usage: healpix [global flags] <ang2pix|pix2ang|radec2pix|pix2radec|convert|info> [flags]")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// config is the parsed global state shared by all commands.
type config struct {
	grid   healpix.Dynamic
	scheme string
	stdout io.Writer
	stderr io.Writer
}

type command func(cfg *config, args []string) error

var commands = map[string]command{
	"ang2pix":   runAng2Pix,
	"pix2ang":   runPix2Ang,
	"radec2pix": runRaDec2Pix,
	"pix2radec": runPix2RaDec,
	"convert":   runConvert,
	"info":      runInfo,
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	nsideDefault := uint32(defaultNside)
	if v := getenv(envNside); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("%s: %w", envNside, err)
		}
		nsideDefault = uint32(n)
	}

	schemeDefault := "nested"
	if v := getenv(envScheme); v != "" {
		schemeDefault = v
	}

	var (
		nside     uint32
		scheme    string
		logLevel  string
		logFormat string
	)

	flagSet := pflag.NewFlagSet("healpix", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.Uint32Var(&nside, "nside", nsideDefault, "face resolution, a power of two in [1, 32768] (env "+envNside+")")
	flagSet.StringVar(&scheme, "scheme", schemeDefault, "numbering scheme: nested or ring (env "+envScheme+")")
	flagSet.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flagSet.StringVar(&logFormat, "log-format", "text", "log format: text or json")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(stderr, logLevel, logFormat)
	if err != nil {
		return err
	}

	scheme = strings.ToLower(scheme)
	if scheme != "nested" && scheme != "ring" {
		return fmt.Errorf("unknown scheme %q: want nested or ring", scheme)
	}

	rest := flagSet.Args()
	if len(rest) == 0 {
		return errUsage
	}

	cmd, ok := commands[rest[0]]
	if !ok {
		return fmt.Errorf("unknown command %q\n%w", rest[0], errUsage)
	}

	grid, err := healpix.NewDynamic(nside, healpix.WithLogger(logger))
	if err != nil {
		return err
	}

	cfg := &config{
		grid:   grid,
		scheme: scheme,
		stdout: stdout,
		stderr: stderr,
	}

	return cmd(cfg, rest[1:])
}

func newLogger(w io.Writer, level, format string) (*healpix.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return healpix.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return healpix.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q: want text or json", format)
	}
}

func newCommandFlags(cfg *config, name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(cfg.stderr)
	return fs
}

func parseCommand(fs *pflag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected argument %q", fs.Name(), fs.Arg(0))
	}
	for _, name := range required {
		if !fs.Changed(name) {
			return fmt.Errorf("%s: --%s is required", fs.Name(), name)
		}
	}
	return nil
}

// requireFinite rejects NaN and infinite values of the named float flags,
// which strconv accepts.
func requireFinite(fs *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		v, err := fs.GetFloat64(name)
		if err != nil {
			return err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: --%s must be a finite number, got %v", fs.Name(), name, v)
		}
	}
	return nil
}

func runAng2Pix(cfg *config, args []string) error {
	var theta, phi float64

	fs := newCommandFlags(cfg, "ang2pix")
	fs.Float64Var(&theta, "theta", 0, "colatitude in radians, [0, π]")
	fs.Float64Var(&phi, "phi", 0, "longitude in radians")
	if err := parseCommand(fs, args, "theta", "phi"); err != nil {
		return err
	}
	if err := requireFinite(fs, "theta", "phi"); err != nil {
		return err
	}

	var p uint64
	if cfg.scheme == "ring" {
		p = healpix.AngleToPixel[healpix.Ring](cfg.grid, theta, phi).Uint64()
	} else {
		p = healpix.AngleToPixel[healpix.Nested](cfg.grid, theta, phi).Uint64()
	}

	_, err := fmt.Fprintln(cfg.stdout, p)
	return err
}

func runPix2Ang(cfg *config, args []string) error {
	var pixel uint64

	fs := newCommandFlags(cfg, "pix2ang")
	fs.Uint64Var(&pixel, "pixel", 0, "pixel index")
	if err := parseCommand(fs, args, "pixel"); err != nil {
		return err
	}

	var (
		theta, phi float64
		err        error
	)
	if cfg.scheme == "ring" {
		theta, phi, err = healpix.PixelToAngle(cfg.grid, healpix.PixelFromUint64[healpix.Ring](pixel))
	} else {
		theta, phi, err = healpix.PixelToAngle(cfg.grid, healpix.PixelFromUint64[healpix.Nested](pixel))
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cfg.stdout, "%.10f %.10f\n", theta, phi)
	return err
}

func runRaDec2Pix(cfg *config, args []string) error {
	var ra, dec float64

	fs := newCommandFlags(cfg, "radec2pix")
	fs.Float64Var(&ra, "ra", 0, "right ascension in degrees")
	fs.Float64Var(&dec, "dec", 0, "declination in degrees, [-90, 90]")
	if err := parseCommand(fs, args, "ra", "dec"); err != nil {
		return err
	}
	if err := requireFinite(fs, "ra", "dec"); err != nil {
		return err
	}

	pos := coord.RaDecFromDegrees(ra, dec)

	var p uint64
	if cfg.scheme == "ring" {
		p = healpix.RaDecToPixel[healpix.Ring](cfg.grid, pos).Uint64()
	} else {
		p = healpix.RaDecToPixel[healpix.Nested](cfg.grid, pos).Uint64()
	}

	_, err := fmt.Fprintln(cfg.stdout, p)
	return err
}

func runPix2RaDec(cfg *config, args []string) error {
	var pixel uint64

	fs := newCommandFlags(cfg, "pix2radec")
	fs.Uint64Var(&pixel, "pixel", 0, "pixel index")
	if err := parseCommand(fs, args, "pixel"); err != nil {
		return err
	}

	var (
		pos coord.RaDec
		err error
	)
	if cfg.scheme == "ring" {
		pos, err = healpix.PixelToRaDec(cfg.grid, healpix.PixelFromUint64[healpix.Ring](pixel))
	} else {
		pos, err = healpix.PixelToRaDec(cfg.grid, healpix.PixelFromUint64[healpix.Nested](pixel))
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cfg.stdout, "%.10f %.10f\n", pos.RA.Degrees(), pos.Dec.Degrees())
	return err
}

func runConvert(cfg *config, args []string) error {
	var pixel uint64

	fs := newCommandFlags(cfg, "convert")
	fs.Uint64Var(&pixel, "pixel", 0, "pixel index in the --scheme numbering")
	if err := parseCommand(fs, args, "pixel"); err != nil {
		return err
	}

	var (
		out uint64
		err error
	)
	if cfg.scheme == "ring" {
		var p healpix.Pixel[healpix.Nested]
		p, err = healpix.Convert[healpix.Nested](cfg.grid, healpix.PixelFromUint64[healpix.Ring](pixel))
		out = p.Uint64()
	} else {
		var p healpix.Pixel[healpix.Ring]
		p, err = healpix.Convert[healpix.Ring](cfg.grid, healpix.PixelFromUint64[healpix.Nested](pixel))
		out = p.Uint64()
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cfg.stdout, out)
	return err
}

func runInfo(cfg *config, args []string) error {
	fs := newCommandFlags(cfg, "info")
	if err := parseCommand(fs, args); err != nil {
		return err
	}

	g := cfg.grid
	_, err := fmt.Fprintf(cfg.stdout, "nside=%d order=%d scheme=%s pixels_per_face=%d total_pixels=%d\n",
		g.FaceResolution(), g.Order(), strings.ToUpper(cfg.scheme), g.PixelsPerFace(), g.TotalPixels())
	return err
}
