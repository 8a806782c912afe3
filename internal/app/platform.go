package app

import (
	"os/exec"
	"runtime"
	"strings"
)

// detectOpener finds the command that hands a file to the desktop's default
// viewer.
func detectOpener() ([]string, bool) {
	return detectOpenerInternal(runtime.GOOS, exec.LookPath)
}

func detectOpenerInternal(goos string, lookPath func(string) (string, error)) ([]string, bool) {
	try := func(args ...string) ([]string, bool) {
		if path, err := lookPath(args[0]); err == nil && path != "" {
			return append([]string{path}, args[1:]...), true
		}
		return nil, false
	}

	switch strings.ToLower(goos) {
	case "windows":
		// The empty argument is start's window title.
		if cmd, ok := try("cmd", "/c", "start", ""); ok {
			return cmd, true
		}
		return try("rundll32", "url.dll,FileProtocolHandler")
	case "darwin":
		return try("open")
	}

	candidates := [][]string{
		{"xdg-open"},
		{"wslview"},
		{"gio", "open"},
	}
	for _, candidate := range candidates {
		if cmd, ok := try(candidate...); ok {
			return cmd, true
		}
	}
	return nil, false
}

// startDetached launches args without waiting for the viewer to exit.
func startDetached(args []string) error {
	cmd := exec.Command(args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
