// Package dotenv loads KEY=VALUE files into an environment table, with
// double-quoted values and ${NAME} interpolation against variables that are
// already set.
package dotenv

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

var (
	ErrOpenFile           = errors.New("failed to open file")
	ErrRead               = errors.New("failed to read file")
	ErrMalformedLine      = errors.New("invalid line")
	ErrUnresolvedVariable = errors.New("variable not found")
	ErrInterpolationEmpty = errors.New("failed to interpolate value")
	ErrSetEnv             = errors.New("failed to set variable")
)

type Options struct {
	MaxLineLength int
	Logger        *slog.Logger
}

type Loader struct {
	env    Environment
	max    int
	logger *slog.Logger
}

func New(env Environment, opts Options) *Loader {
	if env == nil {
		env = OSEnvironment{}
	}
	if opts.MaxLineLength < 2 {
		opts.MaxLineLength = DefaultMaxLineLength
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Loader{
		env:    env,
		max:    opts.MaxLineLength,
		logger: opts.Logger,
	}
}

// Load applies path to the process environment, logging diagnostics through
// slog.Default. Failures are reported only through the log.
func Load(path string) {
	_, _ = New(OSEnvironment{}, Options{}).Load(path)
}

// Load opens path and applies every assignment in it. An open failure sets
// nothing and is the only error besides a read failure; per-line problems are
// collected in the report and processing continues.
func (l *Loader) Load(path string) (*Report, error) {
	report := newReport(path)

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error("failed to open file",
			slog.String("load_id", report.ID),
			slog.String("path", path),
			slog.Any("err", err),
		)
		return report, fmt.Errorf("%w: %s: %w", ErrOpenFile, path, err)
	}
	defer file.Close()

	return report, l.apply(report, file)
}

// LoadReader is Load for an already open source; name is used in
// diagnostics only.
func (l *Loader) LoadReader(name string, r io.Reader) (*Report, error) {
	report := newReport(name)
	return report, l.apply(report, r)
}

func (l *Loader) apply(report *Report, r io.Reader) error {
	lines := newLineReader(r, l.max)
	log := l.logger.With(slog.String("load_id", report.ID), slog.String("path", report.Path))

	for n := 1; ; n++ {
		raw, ok, err := lines.next()
		if err != nil {
			log.Error("failed to read file", slog.Int("line", n), slog.Any("err", err))
			return fmt.Errorf("%w: %s: %w", ErrRead, report.Path, err)
		}
		if !ok {
			return nil
		}

		line := ParseLine(raw)
		switch line.Kind {
		case LineSkip:
			continue
		case LineMalformed:
			log.Warn("invalid line", slog.Int("line", n), slog.String("text", line.Text))
			report.warn(n, fmt.Errorf("%w: %s", ErrMalformedLine, line.Text))
			continue
		}

		value := line.Value
		if NeedsInterpolation(value) {
			out, missing := Interpolate(value, l.env, l.max)
			for _, name := range missing {
				log.Warn("variable not found", slog.Int("line", n), slog.String("name", name))
				report.warn(n, fmt.Errorf("%w: %s", ErrUnresolvedVariable, name))
			}
			if out == "" {
				log.Warn("failed to interpolate value", slog.Int("line", n), slog.String("value", value))
				report.warn(n, fmt.Errorf("%w: %s", ErrInterpolationEmpty, value))
				continue
			}
			value = out
		}

		if err := l.env.Set(line.Key, value); err != nil {
			log.Warn("failed to set variable", slog.Int("line", n), slog.String("key", line.Key), slog.Any("err", err))
			report.warn(n, fmt.Errorf("%w: %q: %w", ErrSetEnv, line.Key, err))
			continue
		}
		report.Applied = append(report.Applied, Assignment{Line: n, Key: line.Key, Value: value})
	}
}

func newReport(path string) *Report {
	return &Report{ID: uuid.NewString(), Path: path}
}
