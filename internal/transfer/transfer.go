// Package transfer copies one selected file between the phone and the PC.
package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/joe/savswap/internal/config"
	"github.com/joe/savswap/internal/navigator"
	pkgerrors "github.com/joe/savswap/pkg/errors"
	"github.com/joe/savswap/pkg/gateway"
	"github.com/joe/savswap/pkg/listing"
)

// Copier is the part of the bridge a transfer needs.
type Copier interface {
	Pull(ctx context.Context, src, dst string) (gateway.Result, error)
	Push(ctx context.Context, src, dst string) (gateway.Result, error)
}

// Report describes a finished copy for display.
type Report struct {
	File      string
	Direction navigator.Direction
	Source    string
	Dest      string
	Success   bool
	// Output is the command's standard output.
	Output string
	// Diagnostic is the command's standard error, empty when it printed none.
	Diagnostic string
	// Suggestions are hints for a failed copy.
	Suggestions string
}

// Invoker runs pull and push commands for the configured paths.
type Invoker struct {
	copier   Copier
	paths    config.Paths
	enricher pkgerrors.Enricher
	logger   zerolog.Logger
}

// NewInvoker creates an Invoker copying between the roots in paths.
func NewInvoker(copier Copier, paths config.Paths, logger zerolog.Logger) *Invoker {
	return &Invoker{
		copier:   copier,
		paths:    paths,
		enricher: pkgerrors.NewEnricher(),
		logger:   logger,
	}
}

// Transfer copies file in direction. The source is the matching root path
// with file appended as is; the destination is the other root. A command that
// runs and fails is reported through the Report, not as an error.
func (inv *Invoker) Transfer(ctx context.Context, file string, direction navigator.Direction) (Report, error) {
	report := Report{File: file, Direction: direction}

	var (
		result gateway.Result
		err    error
	)

	switch direction {
	case navigator.DeviceToHost:
		report.Source = inv.paths.DevicePath + file
		report.Dest = inv.paths.HostPath
		result, err = inv.copier.Pull(ctx, report.Source, report.Dest)
	case navigator.HostToDevice:
		report.Source = inv.paths.HostPath + file
		report.Dest = inv.paths.DevicePath
		result, err = inv.copier.Push(ctx, report.Source, report.Dest)
	default:
		return report, fmt.Errorf("unknown transfer direction %d", direction)
	}

	if err != nil {
		return report, fmt.Errorf("failed to copy %s: %w", file, err)
	}

	report.Success = result.Success
	report.Output = listing.Decode(result.Stdout)
	report.Diagnostic = listing.Decode(result.Stderr)

	if !report.Success {
		diag := report.Diagnostic
		if diag == "" {
			diag = report.Output
		}

		report.Suggestions = pkgerrors.FormatSuggestions(inv.enricher.Enrich(errors.New(diag), ""))
	}

	inv.logger.Info().
		Str("file", file).
		Str("direction", direction.String()).
		Str("src", report.Source).
		Str("dst", report.Dest).
		Bool("success", report.Success).
		Msg("transfer finished")

	return report, nil
}
