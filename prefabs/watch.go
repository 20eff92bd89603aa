package prefabs

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Settle is how long a file must stay quiet before its change is reported.
// Editors often write a file in several steps.
const Settle = 100 * time.Millisecond

type FileKind uint8

const (
	KindUnknown FileKind = iota
	KindSpec
	KindScript
	KindLevel
)

// Classify maps a changed file name to what needs reloading.
func Classify(path string) FileKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return KindSpec
	case ".tengo":
		return KindScript
	case ".json":
		return KindLevel
	}
	return KindUnknown
}

// Change is one settled file edit.
type Change struct {
	Path string
	Kind FileKind
}

// Watcher reports edited prefab, script and map files. It only delivers
// changes; the game loop decides what to reload between ticks. Both
// channels are closed once the watcher stops.
type Watcher struct {
	fsw     *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fsw:     fsw,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
	})
	return err
}

// run batches raw events per path and flushes them once no new event has
// arrived for Settle.
func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	pending := make(map[string]FileKind)
	timer := time.NewTimer(Settle)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			kind := Classify(ev.Name)
			if kind == KindUnknown {
				continue
			}
			pending[ev.Name] = kind
			timer.Reset(Settle)
		case <-timer.C:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			slices.Sort(paths)
			for _, p := range paths {
				select {
				case w.Events <- Change{Path: p, Kind: pending[p]}:
				case <-w.closeCh:
					return
				}
				delete(pending, p)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
