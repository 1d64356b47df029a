package cli

import (
	"errors"

	"github.com/placeos/deployctl/internal/compose"
	clierrors "github.com/placeos/deployctl/internal/errors"
)

// composeError converts a compose failure into the CLI's error shape.
// Timeouts get a dedicated exit code so wrapping scripts can retry
// with a larger PLACEOS_TIMEOUT.
func composeError(err error) error {
	if err == nil {
		return nil
	}
	var timeout *compose.TimeoutError
	if errors.As(err, &timeout) {
		clierrors.PrintError(clierrors.ComposeTimeout(timeout.Timeout.String(), timeout.Command))
		return NewExitError(ExitTimeout)
	}
	return err
}
