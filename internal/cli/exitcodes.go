package cli

import (
	"errors"

	"github.com/yaklabco/tagsoup/internal/configloader"
	"github.com/yaklabco/tagsoup/pkg/fsutil"
)

// Exit codes for tagsoup.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitError indicates a failed run.
	ExitError = 1

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFor maps an error from command execution to a process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError
	if errors.As(err, &validationErr) {
		return ExitConfigError
	}

	if errors.Is(err, fsutil.ErrNotFound) ||
		errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory) {
		return ExitIOError
	}

	return ExitError
}
