package sitepipe

import (
	"bytes"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// OpenInApp opens path in the named desktop application. The command is
// fire and forget: a failure to launch is returned, but whatever the
// application does afterwards is only logged.
func OpenInApp(app, path string) error {
	switch {
	case app == "":
		return missing("OpenInApp", "App")
	case path == "":
		return missing("OpenInApp", "Path")
	}

	cmd := openCommand(app, path)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s in %s: %w", path, app, err)
	}

	go func() {
		err := cmd.Wait()
		if output.Len() > 0 {
			slog.Info("viewer output", "app", app, "output", output.String())
		}
		if err != nil {
			slog.Warn("viewer exited", "app", app, "error", err)
		}
	}()

	return nil
}

func openCommand(app, path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", "-a", app, path)
	case "windows":
		return exec.Command("cmd", "/c", "start", app, path)
	default:
		return exec.Command(app, path)
	}
}
