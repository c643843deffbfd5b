package gateway

import (
	"context"
	"runtime"
)

// DefaultADB is the bridge executable used when none is configured.
const DefaultADB = "adb"

// DefaultShell returns the host shell invocation for the current platform.
// The listing command is always appended as one extra argument.
func DefaultShell() []string {
	if runtime.GOOS == "windows" {
		return []string{"powershell.exe"}
	}

	return []string{"pwsh", "-Command"}
}

// Bridge builds the exact argument shapes for every external command the
// tool issues and hands them to a Runner.
type Bridge struct {
	Runner Runner
	ADB    string
	Shell  []string
}

// NewBridge creates a Bridge. Empty adb or shell fall back to the defaults.
func NewBridge(runner Runner, adb string, shell []string) *Bridge {
	if adb == "" {
		adb = DefaultADB
	}

	if len(shell) == 0 {
		shell = DefaultShell()
	}

	return &Bridge{Runner: runner, ADB: adb, Shell: shell}
}

// Probe checks that a device answers "adb shell".
func (b *Bridge) Probe(ctx context.Context) (Result, error) {
	return b.Runner.Run(ctx, b.ADB, "shell")
}

// ListDevice lists devicePath on the device.
func (b *Bridge) ListDevice(ctx context.Context, devicePath string) (Result, error) {
	return b.Runner.Run(ctx, b.ADB, "shell", "ls", devicePath)
}

// ListHost lists hostPath through the host shell. The path is single-quoted
// and passed together with the command as one argument.
func (b *Bridge) ListHost(ctx context.Context, hostPath string) (Result, error) {
	args := make([]string, 0, len(b.Shell))
	args = append(args, b.Shell[1:]...)
	args = append(args, "ls -n '"+hostPath+"'")

	return b.Runner.Run(ctx, b.Shell[0], args...)
}

// Pull copies src from the device into the host directory dst.
func (b *Bridge) Pull(ctx context.Context, src, dst string) (Result, error) {
	return b.Runner.Run(ctx, b.ADB, "pull", src, dst)
}

// Push copies src from the host into the device directory dst.
func (b *Bridge) Push(ctx context.Context, src, dst string) (Result, error) {
	return b.Runner.Run(ctx, b.ADB, "push", src, dst)
}
