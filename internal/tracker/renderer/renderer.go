package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/cta-tracker/internal/common/config"
	"github.com/cta-tracker/internal/common/logger"
	"github.com/cta-tracker/pkg/tracker/models"
)

const outputFileName = "index.html"

var boardTemplate = template.Must(template.New("board").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta http-equiv="refresh" content="{{.RefreshInterval}}">
  <title>Chicago Brown Line Stop</title>
  <style>
    body { background-color: #3e2723; color: #d7ccc8; font-family: sans-serif; margin: 0; padding: 1rem; }
    h1 { color: #ffcc80; }
    table { width: 100%; border-collapse: collapse; margin-top: 1rem; }
    th, td { padding: 0.5rem; border: 1px solid #5d4037; text-align: left; }
    th { background-color: #5d4037; color: #ffe0b2; }
    tr:nth-child(even) { background-color: #4e342e; }
  </style>
</head>
<body>
  <h1>Chicago Brown Line - Stop {{.StopID}}</h1>
  <p>Last updated: {{.LastUpdated}}</p>
  <table>
    <thead>
      <tr>
        <th>Route</th><th>Destination</th><th>ETA</th><th>Time Remaining</th>
      </tr>
    </thead>
    <tbody>
      {{- range .Records}}
      <tr><td>{{.Route}}</td><td>{{.Destination}}</td><td>{{.ArrivalTime}}</td><td>{{.TimeRemaining}}</td></tr>
      {{- else}}
      <tr><td colspan="4">No data</td></tr>
      {{- end}}
    </tbody>
  </table>
</body>
</html>
`))

// boardView is the data handed to the page template.
type boardView struct {
	StopID          string
	RefreshInterval int
	LastUpdated     string
	Records         []models.ArrivalRecord
}

// Renderer writes the arrivals board as a self-contained HTML document under
// the configured output directory.
type Renderer struct {
	cfg    config.BoardConfig
	stopID string
	loc    *time.Location
	logger logger.Logger

	now func() time.Time
}

func New(cfg *config.Config, log logger.Logger) *Renderer {
	return &Renderer{
		cfg:    cfg.Board,
		stopID: cfg.API.StopID,
		loc:    cfg.Board.Location(),
		logger: log,
		now:    time.Now,
	}
}

// Render writes one complete page for the given records, overwriting any
// previous page at the same path. The records may be empty, in which case a
// single "No data" placeholder row is emitted.
func (r *Renderer) Render(records []models.ArrivalRecord) error {
	view := boardView{
		StopID:          r.stopID,
		RefreshInterval: r.cfg.RefreshInterval,
		LastUpdated:     r.now().In(r.loc).Format("2006-01-02 15:04:05 MST"),
		Records:         records,
	}

	var buf bytes.Buffer
	if err := boardTemplate.Execute(&buf, view); err != nil {
		return fmt.Errorf("executing board template: %w", err)
	}

	if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	outPath := filepath.Join(r.cfg.OutputDir, outputFileName)
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing board page: %w", err)
	}

	r.logger.Info("Wrote arrivals board", "rows", len(records), "path", outPath)

	return nil
}

// OutputPath returns where Render writes the page.
func (r *Renderer) OutputPath() string {
	return filepath.Join(r.cfg.OutputDir, outputFileName)
}
