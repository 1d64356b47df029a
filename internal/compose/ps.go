package compose

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// ServiceStatus is one service row from docker compose ps.
type ServiceStatus struct {
	Name    string `json:"Name"`
	Service string `json:"Service"`
	State   string `json:"State"`
	Health  string `json:"Health"`
}

// Ps reports the status of the deployment's services.
func (r *Runner) Ps(ctx context.Context) ([]ServiceStatus, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(r.Timeout)*time.Second)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Bin, r.Args("ps", "--format", "json")...)
	cmd.Stderr = r.Stderr
	cmd.Env = os.Environ()

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.FormatCommand("ps"), err)
	}
	return parsePsOutput(out)
}

// parsePsOutput decodes compose ps JSON. Recent compose emits one
// object per line; older releases emit a single array.
func parsePsOutput(out []byte) ([]ServiceStatus, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var services []ServiceStatus
		if err := json.Unmarshal(trimmed, &services); err != nil {
			return nil, fmt.Errorf("decoding compose ps output: %w", err)
		}
		return services, nil
	}

	var services []ServiceStatus
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	for {
		var status ServiceStatus
		if err := dec.Decode(&status); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("decoding compose ps output: %w", err)
		}
		services = append(services, status)
	}
	return services, nil
}

// WaitRunning polls compose ps until every service reports a running
// state or the wait times out. One-shot task containers that already
// exited cleanly do not block the wait.
func (r *Runner) WaitRunning(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		services, err := r.Ps(ctx)
		if err == nil && len(services) > 0 && allRunning(services) {
			return nil
		}

		if time.Now().After(deadline) {
			if err != nil {
				return fmt.Errorf("waiting for services: %w", err)
			}
			return fmt.Errorf("services not all running after %s", timeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
}

func allRunning(services []ServiceStatus) bool {
	for _, s := range services {
		switch s.State {
		case "running", "exited":
		default:
			return false
		}
	}
	return true
}
