// Package report renders scan results for people and for pipelines.
package report

import (
	"io"
	"strings"

	"doppel/config"
	"doppel/scanner"
)

// SchemaVersion identifies the machine-readable report layout.
const SchemaVersion = "1.0"

// Render writes res to w in the format cfg selects. Annotation lookups
// (timestamps, media types, volume stats) happen lazily here rather than
// during the scan, and their failures degrade the report instead of
// failing it.
func Render(w io.Writer, res *scanner.Result, cfg *config.Config) error {
	switch strings.ToLower(cfg.OutputFormat) {
	case "json":
		return renderJSON(w, res, cfg)
	case "csv":
		return renderCSV(w, res)
	default:
		return renderTable(w, res, cfg)
	}
}
