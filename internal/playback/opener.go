package playback

import (
	"fmt"
	"os/exec"
	"runtime"
	"time"
)

// Opener opens one artifact, for example in a web browser.
type Opener func(path string) error

// SystemOpener opens path with the platform's default handler.
func SystemOpener(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	go cmd.Wait()
	return nil
}

// OpenSequence opens each path in order with a fixed delay between them.
// Unlike Player it does not account for the time spent opening; a failing
// path is reported and the sequence continues.
func OpenSequence(paths []string, delay time.Duration, open Opener, sleep func(time.Duration)) []error {
	if sleep == nil {
		sleep = time.Sleep
	}

	var errs []error
	for _, p := range paths {
		if err := open(p); err != nil {
			errs = append(errs, err)
		}
		sleep(delay)
	}
	return errs
}
