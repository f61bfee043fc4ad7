package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
)

// Command parameters
const (
	WindowsCmdFlag = "/c"
)

// Linux fallback openers, tried in order when xdg-open is missing
var LinuxBrowserCommands = []string{"sensible-browser", "x-www-browser", "firefox", "chromium"}

// OpenInBrowser opens the given http(s) URL with the system default browser.
func OpenInBrowser(rawURL string) error {
	if err := ValidateLinkURL(rawURL); err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, rawURL).Run()
	case OSWindows:
		return exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", rawURL).Run()
	case OSLinux:
		return openInBrowserLinux(rawURL)
	case OSAndroid:
		return openInBrowserAndroid(rawURL)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openInBrowserLinux opens the URL on Linux, preferring xdg-open
func openInBrowserLinux(rawURL string) error {
	if _, err := exec.LookPath(XDGOpenCommand); err == nil {
		return exec.Command(XDGOpenCommand, rawURL).Run()
	}

	// Fallback to common browsers
	for _, browser := range LinuxBrowserCommands {
		if _, err := exec.LookPath(browser); err == nil {
			return exec.Command(browser, rawURL).Run()
		}
	}

	return fmt.Errorf("no suitable browser found")
}

// openInBrowserAndroid opens the URL via an Android VIEW intent
func openInBrowserAndroid(rawURL string) error {
	return exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", rawURL).Run()
}

// ValidateLinkURL rejects strings that cannot be opened as external links.
// Only the scheme is checked; everything after it is passed through verbatim.
func ValidateLinkURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return fmt.Errorf("link URL is empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return fmt.Errorf("link URL must start with http:// or https://: %s", rawURL)
	}
	return nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ResolveContentPath resolves a content file path relative to the working
// directory and reports whether the file exists.
func ResolveContentPath(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, false
	}

	if _, err := os.Stat(absPath); err != nil {
		return absPath, false
	}
	return absPath, true
}
