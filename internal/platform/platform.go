package platform

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// LookPathFunc resolves an executable name to a path. exec.LookPath in production.
type LookPathFunc func(file string) (string, error)

// BrowserCommand returns the executable and leading arguments used to open a
// URL on the current platform. The URL itself is appended by the caller.
func BrowserCommand() (string, []string, error) {
	return browserCommandFor(runtime.GOOS, os.Getenv("BROWSER"), exec.LookPath)
}

// browserCommandFor selects the opener for goos. A non-empty $BROWSER wins
// everywhere. On macOS it uses open, on Windows rundll32, and on Linux and
// the BSDs xdg-open with a fallback to sensible-browser.
func browserCommandFor(goos, browserEnv string, lookPath LookPathFunc) (string, []string, error) {
	if browserEnv != "" {
		return browserEnv, nil, nil
	}

	switch goos {
	case "darwin":
		return "open", nil, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if _, err := lookPath("xdg-open"); err == nil {
			return "xdg-open", nil, nil
		}
		if _, err := lookPath("sensible-browser"); err == nil {
			return "sensible-browser", nil, nil
		}
		return "", nil, fmt.Errorf("no browser opener found: install xdg-utils or set $BROWSER")
	default:
		return "", nil, fmt.Errorf("opening a browser is not supported on %s", goos)
	}
}
