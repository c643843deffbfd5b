package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/joe/savswap/pkg/errors"
)

func TestEnricher_EnrichAlreadyActionableError(t *testing.T) {
	t.Parallel()

	enricher := pkgerrors.NewEnricher()
	originalActionable := pkgerrors.NewActionableError(
		"permission denied",
		pkgerrors.CategoryPermission,
		[]string{"existing suggestion"},
		"/original/path",
	)

	enriched := enricher.Enrich(originalActionable, "/new/path")

	var actionableErr pkgerrors.ActionableError
	if !errors.As(enriched, &actionableErr) {
		t.Fatalf("expected ActionableError, got %T", enriched)
	}

	if actionableErr != originalActionable {
		t.Error("expected same ActionableError instance when enriching ActionableError")
	}
}

func TestEnricher_EnrichBridgeDiagnostic(t *testing.T) {
	t.Parallel()

	enricher := pkgerrors.NewEnricher()
	originalErr := errors.New("adb: error: failed to stat remote object '/sdcard/saves/x.sav': No such file or directory\n")

	enriched := enricher.Enrich(originalErr, "")

	var actionableErr pkgerrors.ActionableError
	if !errors.As(enriched, &actionableErr) {
		t.Fatalf("expected ActionableError, got %T", enriched)
	}

	if actionableErr.Category() != pkgerrors.CategoryPath {
		t.Errorf("expected category %q, got %q", pkgerrors.CategoryPath, actionableErr.Category())
	}

	if actionableErr.AffectedPath() != "/sdcard/saves/x.sav" {
		t.Errorf("expected extracted path, got %q", actionableErr.AffectedPath())
	}

	if actionableErr.OriginalError() != "adb: error: failed to stat remote object '/sdcard/saves/x.sav': No such file or directory" {
		t.Errorf("expected trimmed original message, got %q", actionableErr.OriginalError())
	}

	if len(actionableErr.Suggestions()) == 0 {
		t.Error("expected suggestions, got none")
	}
}

func TestEnricher_EnrichNoDevice(t *testing.T) {
	t.Parallel()

	enriched := pkgerrors.NewEnricher().Enrich(errors.New("error: no devices/emulators found"), "")

	var actionableErr pkgerrors.ActionableError
	if !errors.As(enriched, &actionableErr) {
		t.Fatalf("expected ActionableError, got %T", enriched)
	}

	if actionableErr.Category() != pkgerrors.CategoryDevice {
		t.Errorf("expected category %q, got %q", pkgerrors.CategoryDevice, actionableErr.Category())
	}

	if actionableErr.AffectedPath() != "" {
		t.Errorf("expected empty path, got %q", actionableErr.AffectedPath())
	}
}

func TestEnricher_ExtractPathFromErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		errorMsg     string
		providedPath string
		expectedPath string
		category     pkgerrors.ErrorCategory
	}{
		{
			name:         "quoted remote path",
			errorMsg:     "adb: error: failed to copy '/sdcard/a.sav': remote Permission denied",
			expectedPath: "/sdcard/a.sav",
			category:     pkgerrors.CategoryPermission,
		},
		{
			name:         "powershell quoted path",
			errorMsg:     `Cannot find path 'C:\saves\' because it does not exist.`,
			expectedPath: `C:\saves\`,
			category:     pkgerrors.CategoryPath,
		},
		{
			name:         "go style unix path",
			errorMsg:     "open /home/user/file.sav: permission denied",
			expectedPath: "/home/user/file.sav",
			category:     pkgerrors.CategoryPermission,
		},
		{
			name:         "go style windows path",
			errorMsg:     `open C:\Users\test\file.sav: access denied`,
			expectedPath: `C:\Users\test\file.sav`,
			category:     pkgerrors.CategoryPermission,
		},
		{
			name:         "prefer provided path",
			errorMsg:     "open /extracted/path.sav: permission denied",
			providedPath: "/provided/path.sav",
			expectedPath: "/provided/path.sav",
			category:     pkgerrors.CategoryPermission,
		},
		{
			name:         "no path in message",
			errorMsg:     "permission denied",
			expectedPath: "",
			category:     pkgerrors.CategoryPermission,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			enriched := pkgerrors.NewEnricher().Enrich(errors.New(testCase.errorMsg), testCase.providedPath)

			var actionableErr pkgerrors.ActionableError
			if !errors.As(enriched, &actionableErr) {
				t.Fatalf("expected ActionableError, got %T", enriched)
			}

			if actionableErr.AffectedPath() != testCase.expectedPath {
				t.Errorf("expected path %q, got %q", testCase.expectedPath, actionableErr.AffectedPath())
			}

			if actionableErr.Category() != testCase.category {
				t.Errorf("expected category %q, got %q", testCase.category, actionableErr.Category())
			}
		})
	}
}
