package etl

import (
	"fmt"
	"log/slog"

	"github.com/jagdpruefer/quizetl/pkg/config"
	"github.com/jagdpruefer/quizetl/pkg/export"
	"github.com/jagdpruefer/quizetl/pkg/logger"
	"github.com/jagdpruefer/quizetl/pkg/models"
	"github.com/jagdpruefer/quizetl/pkg/table"
)

// Result is the outcome of a pipeline run
type Result struct {
	Records []models.QuizRecord
	Groups  []models.QuestionGroup
	Stats   models.RunStats
}

// Normalizer turns a denormalized questions CSV into the long-format quiz dataset
type Normalizer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewNormalizer creates a normalizer. A nil cfg uses config.Default(), a nil
// logger discards progress messages.
func NewNormalizer(cfg *config.Config, log *slog.Logger) *Normalizer {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Normalizer{cfg: cfg, logger: log}
}

// Run loads the input, transforms it and writes both output files.
// Nothing is written when loading or transforming fails.
func (n *Normalizer) Run() (*Result, error) {
	inputPath := n.cfg.InputPath()
	tbl, err := table.Load(inputPath)
	if err != nil {
		return nil, err
	}
	n.logger.Info("file loaded", "path", inputPath, "rows", tbl.Len())

	roles := n.cfg.Columns
	if len(roles) == 0 {
		roles = table.DetectRoles(tbl.Header)
		n.logger.Debug("column roles detected from header", "columns", len(roles))
	}
	layout, err := table.ResolveLayout(tbl.Header, roles)
	if err != nil {
		return nil, err
	}

	result := n.transform(tbl, layout)

	csvPath, jsonPath := n.cfg.CSVPath(), n.cfg.JSONPath()
	if err := export.WriteFiles(csvPath, jsonPath, result.Records); err != nil {
		return nil, fmt.Errorf("save outputs: %w", err)
	}
	n.logger.Info("saved", "csv", csvPath, "json", jsonPath)
	return result, nil
}

// Transform runs clean, group and project over an in-memory table.
func Transform(tbl *table.Table, layout table.Layout) *Result {
	return NewNormalizer(nil, nil).transform(tbl, layout)
}

func (n *Normalizer) transform(tbl *table.Table, layout table.Layout) *Result {
	rows := tbl.InputRows(layout)
	for _, row := range rows {
		if reason := dropReason(row); reason != "" {
			n.logger.Debug("row dropped", "line", row.Line, "reason", reason)
		}
	}
	cleaned := Clean(rows)
	n.logger.Info("rows after removing empty lines", "rows", len(cleaned))

	groups := Group(cleaned)
	n.logger.Info("rows after grouping", "rows", len(groups))

	records := Project(groups)
	n.logger.Info("long format ready", "rows", len(records))

	return &Result{
		Records: records,
		Groups:  groups,
		Stats: models.RunStats{
			Loaded:  len(rows),
			Cleaned: len(cleaned),
			Grouped: len(groups),
			Records: len(records),
		},
	}
}
