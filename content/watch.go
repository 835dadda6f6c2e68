package content

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long Watch waits for changes to settle before reloading.
const DefaultDebounce = 500 * time.Millisecond

// Watcher reloads a Library when files under its folder change.
type Watcher struct {
	lib     *Library
	logger  *zap.Logger
	watcher *fsnotify.Watcher
	delay   time.Duration
	notify  func(error)
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// Watch starts watching dir, which must be the folder lib was built from.
// notify, if not nil, receives the result of every reload.
// Call Close to stop watching.
func Watch(lib *Library, dir string, delay time.Duration, notify func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("Watch: %w", err)
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}
	w := &Watcher{
		lib:     lib,
		logger:  lib.logger,
		watcher: fsw,
		delay:   delay,
		notify:  notify,
		done:    make(chan struct{}),
	}
	err = w.addTree(dir)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("Watch: %w", err)
	}
	w.wg.Add(1)
	go w.loop()
	w.logger.Info("Watching content for changes", zap.String("dir", dir))
	return w, nil
}

// addTree adds dir and every visible folder below it.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != dir && containsSpecialFile(d.Name()) {
			return filepath.SkipDir
		}
		return w.watcher.Add(p)
	})
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if ev.Op&fsnotify.Create != 0 && !containsSpecialFile(filepath.Base(ev.Name)) {
				// new folders need watching too; errors mean it was a file
				_ = w.addTree(ev.Name)
			}
			w.logger.Debug("Content changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			err := w.lib.Reload()
			if err != nil {
				w.logger.Error("Content reload failed", zap.Error(err))
			} else {
				w.logger.Info("Content reloaded", zap.Int("pages", len(w.lib.Keys())))
			}
			if w.notify != nil {
				w.notify(err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Content watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
