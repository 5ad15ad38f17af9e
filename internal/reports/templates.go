package reports

import (
	"os"
	"path/filepath"
)

// TemplateLoader handles loading the dashboard HTML template
type TemplateLoader struct{}

// NewTemplateLoader creates a loader with the default search paths
func NewTemplateLoader() *TemplateLoader {
	return &TemplateLoader{}
}

// LoadHTMLTemplate loads the dashboard template from the first candidate
// path that exists, falling back to the embedded copy so installed
// binaries work without the source tree.
func (t *TemplateLoader) LoadHTMLTemplate() (string, error) {
	candidates := []string{
		filepath.Join("internal", "templates", "dashboard_template.html"),
		filepath.Join("..", "..", "internal", "templates", "dashboard_template.html"),
	}

	for _, path := range candidates {
		if content, err := os.ReadFile(path); err == nil {
			return string(content), nil
		}
	}

	return defaultDashboardTemplate, nil
}

// defaultDashboardTemplate mirrors internal/templates/dashboard_template.html.
const defaultDashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f8f9fa;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            border-radius: 10px;
            margin-bottom: 30px;
            text-align: center;
        }
        .header h1 {
            margin: 0;
            font-size: 2.5em;
        }
        .header .timestamp {
            opacity: 0.9;
            margin-top: 10px;
        }
        .content {
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            margin-bottom: 30px;
        }
        .chart-container {
            margin-bottom: 40px;
        }
        .footer {
            text-align: center;
            color: #666;
            font-size: 0.9em;
            margin-top: 30px;
        }
        h1, h2, h3 { color: #333; }
        h2 { border-bottom: 2px solid #667eea; padding-bottom: 5px; }
        code { background: #f4f4f4; padding: 2px 4px; border-radius: 3px; }
        pre { background: #f4f4f4; padding: 15px; border-radius: 5px; overflow-x: auto; }
        blockquote { border-left: 4px solid #667eea; margin: 0 0 10px 0; padding: 5px 0 5px 20px; color: #666; background: #f0f2ff; }
        table { border-collapse: collapse; width: 100%; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 12px; text-align: left; }
        th { background-color: #f8f9fa; font-weight: bold; }
    </style>
</head>
<body>
    <div class="header">
        <h1>📊 {{.Title}}</h1>
        <div class="timestamp">Hub: {{.Hub}} | Generated: {{.GeneratedAt}}</div>
    </div>

    <div class="content">
        {{.Content}}
    </div>

    <div class="footer">
        <p>DataFlow Intelligence Platform v{{.Version}}</p>
        <p>Explorer pages: <a href="flights_explorer.html">flights</a> | <a href="enrollment_explorer.html">enrollment</a> | <a href="happiness_explorer.html">happiness</a></p>
    </div>
</body>
</html>
`
