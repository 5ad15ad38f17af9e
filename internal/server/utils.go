package server

import (
	"os"
	"path/filepath"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/logger"
)

// initialPageFallback is served when the landing page template is missing
const initialPageFallback = `<!DOCTYPE html>
<html>
<body>
<h1>DataFlow Intelligence Platform</h1>
<p>No dashboards have been generated yet. POST to /generate to create the first one.</p>
</body>
</html>`

// loadInitialPage returns the landing page shown before the first dashboard
// is generated. Falls back to an embedded page when the template file is
// not on disk, which happens in containerized deployments.
func loadInitialPage() []byte {
	candidates := []string{
		filepath.Join("internal", "templates", "initial_page.html"),
		filepath.Join("..", "..", "internal", "templates", "initial_page.html"),
	}

	for _, path := range candidates {
		if content, err := os.ReadFile(path); err == nil {
			return content
		}
	}

	logger.Debugf("Initial page template not found, using embedded fallback")
	return []byte(initialPageFallback)
}
