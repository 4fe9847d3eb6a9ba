package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"trisub/internal/fileutil"
	"trisub/internal/logging"
	"trisub/internal/merge"
	"trisub/internal/queue"
	"trisub/internal/subtitle"
)

// processItem runs one item through the merge pipeline and persists the
// outcome. Merge failures mark the item failed and do not abort the loop;
// only queue persistence errors propagate.
func (m *Manager) processItem(ctx context.Context, item *queue.Item) error {
	item.RunID = uuid.NewString()
	item.Status = queue.StatusMerging
	item.ErrorMessage = ""
	if err := m.store.Update(ctx, item); err != nil {
		return fmt.Errorf("persist merging status: %w", err)
	}

	logger := m.logger.With(
		logging.Int64(logging.FieldItemID, item.ID),
		logging.String(logging.FieldRunID, item.RunID),
		logging.String(logging.FieldPair, item.BaseName),
	)
	logger.Info("merge started")
	started := time.Now()

	result, err := m.mergePair(item, logger)
	if err != nil {
		logger.Error("merge failed", logging.Error(err))
		item.Status = queue.StatusFailed
		item.ErrorMessage = err.Error()
		if updateErr := m.store.Update(ctx, item); updateErr != nil {
			return fmt.Errorf("persist failure: %w", updateErr)
		}
		return nil
	}

	item.Status = queue.StatusCompleted
	item.SpanCount = result.spans
	item.WarningCount = result.warnings
	if err := m.store.Update(ctx, item); err != nil {
		return fmt.Errorf("persist completion: %w", err)
	}

	logger.Info("merge completed",
		logging.Int("spans", result.spans),
		logging.Int("warnings", result.warnings),
		logging.Duration("elapsed", time.Since(started)),
		logging.String("output", item.OutputPath))
	return nil
}

type mergeResult struct {
	spans    int
	warnings int
}

func (m *Manager) mergePair(item *queue.Item, logger *slog.Logger) (mergeResult, error) {
	sourceData, err := os.ReadFile(item.SourcePath)
	if err != nil {
		return mergeResult{}, fmt.Errorf("read source track: %w", err)
	}
	targetData, err := os.ReadFile(item.TargetPath)
	if err != nil {
		return mergeResult{}, fmt.Errorf("read target track: %w", err)
	}

	sourceSpans, sourceSkipped := subtitle.ParseSRT(sourceData)
	targetSpans, targetSkipped := subtitle.ParseSRT(targetData)
	if sourceSkipped > 0 || targetSkipped > 0 {
		logger.Warn("damaged subtitle blocks skipped",
			logging.Int("source_skipped", sourceSkipped),
			logging.Int("target_skipped", targetSkipped))
	}
	logger.Debug("tracks parsed",
		logging.Int("source_spans", len(sourceSpans)),
		logging.Int("target_spans", len(targetSpans)))

	groups, err := merge.Match(sourceSpans, targetSpans)
	if err != nil {
		return mergeResult{}, fmt.Errorf("match tracks: %w", err)
	}

	spans, warnings := merge.Build(groups, m.translit)
	for _, warning := range warnings {
		logger.Warn("transliteration failed",
			logging.Int("group", warning.Group),
			logging.String("text", warning.Text),
			logging.Error(warning.Err))
	}

	if err := fileutil.WriteFileAtomic(item.OutputPath, subtitle.FormatSRT(spans), 0o644); err != nil {
		return mergeResult{}, fmt.Errorf("write merged track: %w", err)
	}

	return mergeResult{spans: len(spans), warnings: len(warnings)}, nil
}
