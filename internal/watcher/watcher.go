package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/audio-insight/internal/logger"
)

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	semaphore     chan struct{}
	wg            sync.WaitGroup
}

// Start begins monitoring the input directory for new audio files.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(audioExtensions, ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing analyses to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if !w.isAudioFile(event.Name) {
					w.logger.Debug(ctx, "Ignoring non-audio file: %s", event.Name)
					continue
				}
				w.logger.Info(ctx, "New audio detected: %s", event.Name)

				// Small delay to ensure file is fully written
				time.Sleep(500 * time.Millisecond)

				select {
				case w.semaphore <- struct{}{}:
					w.wg.Add(1)
					go func(filePath string) {
						defer w.wg.Done()
						defer func() { <-w.semaphore }()

						if err := w.handler(ctx, filePath); err != nil {
							w.logger.Error(ctx, "Failed to analyze %s: %v", filePath, err)
						}
					}(event.Name)
				case <-ctx.Done():
					return ctx.Err()
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

var audioExtensions = []string{".wav", ".mp3", ".m4a", ".ogg", ".flac", ".aac"}

func (w *implWatcher) isAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range audioExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
