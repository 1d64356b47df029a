package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/placeos/deployctl/internal/config"
	"github.com/placeos/deployctl/internal/health"
)

// preflight verifies the environment before a lifecycle command touches
// the stack. On failure the full report is printed so the operator sees
// every problem at once, not just the first.
func preflight(ctx context.Context, settings *config.Settings) error {
	report := health.Run(ctx, settings)
	if report.Passed {
		return nil
	}

	fmt.Fprint(os.Stderr, health.FormatReport(report))
	return NewExitError(ExitMissingDependencies)
}
