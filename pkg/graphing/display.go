package graphing

import (
	"os/exec"
	"runtime"
)

// OpenInBrowser opens the report with the platform's default opener. The
// caller saves the chart image first, so a missing or closed viewer never
// loses output.
func OpenInBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
