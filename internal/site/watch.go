package site

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce window for editor save bursts.
const watchSettle = 400 * time.Millisecond

// Watch rebuilds the site whenever a source file changes under the
// configured roots. Events are debounced so one save burst triggers one
// rebuild. Returns when ctx is canceled.
func (b *Builder) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	disc := NewDiscoverer(b.Config.Project.Exclude...)
	for _, root := range b.Config.Project.Roots {
		dirs, err := disc.Dirs(root)
		if err != nil {
			return err
		}
		for _, dir := range dirs {
			if err := watcher.Add(dir); err != nil {
				return err
			}
		}
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			rebuild := strings.HasSuffix(ev.Name, ".m")
			if ev.Op.Has(fsnotify.Create) {
				rebuild = handleCreate(watcher, ev.Name)
			}
			if !rebuild {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(watchSettle, func() { fire <- struct{}{} })
			} else {
				timer.Reset(watchSettle)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		case <-fire:
			timer = nil
			n, err := b.Build(ctx)
			if err != nil {
				log.Printf("rebuild failed: %v", err)
				continue
			}
			log.Printf("rebuilt %d pages", n)
		}
	}
}

// handleCreate registers a freshly created directory with the watcher, so
// sources added under it keep triggering rebuilds. It reports whether the
// event warrants a rebuild: always for directories, which may already hold
// moved-in sources.
func handleCreate(watcher *fsnotify.Watcher, name string) bool {
	info, err := os.Stat(name)
	if err != nil || !info.IsDir() {
		return strings.HasSuffix(name, ".m")
	}
	if err := watcher.Add(name); err != nil {
		log.Printf("watch add %s: %v", name, err)
	}
	return true
}
