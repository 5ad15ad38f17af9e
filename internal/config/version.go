package config

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// GetVersion resolves the running version. CI sets APP_VERSION; local
// builds derive base.build from the VERSION file and the git commit
// count.
func GetVersion() string {
	if v := os.Getenv("APP_VERSION"); v != "" {
		return v
	}

	version := baseVersion()
	if n := commitCount(); n > 0 {
		version += "." + strconv.Itoa(n)
	}
	return version
}

// baseVersion reads the VERSION file, trying the working directory first
// and then two levels up for binaries started from cmd/<name>/.
func baseVersion() string {
	candidates := []string{
		"VERSION",
		filepath.Join("..", "..", "VERSION"),
	}
	for _, path := range candidates {
		if content, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(content))
		}
	}
	return "1.0.0"
}

// commitCount returns the repository commit count, or 0 outside a git
// checkout.
func commitCount() int {
	out, err := exec.Command("git", "rev-list", "--all", "--count", "HEAD").Output()
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0
	}
	return n
}
