package watcher

import "context"

// Watcher monitors a directory for newly created subtitle files
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler analyzes one subtitle file; the watcher calls it for
// every new .srt file it sees
type EventHandler func(ctx context.Context, filePath string) error
