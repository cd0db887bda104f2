package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// moveToArchived moves the original audio file to the archived folder
func (p *implProcessor) moveToArchived(ctx context.Context, audioPath string) error {
	filename := filepath.Base(audioPath)
	destPath := filepath.Join(p.cfg.Paths.Archived, filename)

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	return nil
}
