// Package browser hands URLs to the user's default browser. The list views
// use it to open a record's repo or demo link.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open opens the specified URL in the user's default browser.
func Open(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "linux":
		return exec.Command("xdg-open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
}
