//go:build windows

package app

// Windows has no job control; Ctrl+Z is ignored.
func (app *Application) suspendToShell() {
	app.logger.Debug("suspend ignored on windows")
}

func (app *Application) resumeAfterStop() bool {
	return false
}
