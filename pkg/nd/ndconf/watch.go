package ndconf

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchCallback 文件变更回调函数。
// 配置文件变更并重载后调用；err 非 nil 表示重载失败，此时 cfg 为 nil，
// 调用方应继续使用旧配置。
type WatchCallback func(cfg *Config, err error)

// defaultDebounce 默认防抖时间：编辑器保存往往触发多个事件。
const defaultDebounce = 100 * time.Millisecond

// WatchOption 监视器配置选项。
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
}

// WithDebounce 设置防抖时间。
// 指定时间内的多次变更只触发一次重载；默认 100ms。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// Watcher 监控配置文件变更并自动重载。
// 通过 [Watch] 创建，[Watcher.Start] 启动，[Watcher.Stop] 停止；
// 停止后不可复用。
type Watcher struct {
	path     string
	callback WatchCallback
	debounce time.Duration

	watcher *fsnotify.Watcher
	done    chan struct{}

	mu      sync.Mutex
	running bool
	stopped bool
	timer   *time.Timer
}

// Watch 为 path 指向的配置文件创建监视器。
//
// 监视的是文件所在目录：多数编辑器和配置下发工具以"写临时文件再
// rename"的方式落盘，直接监视文件本身会在 rename 后失效。
func Watch(path string, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if _, err := detectFormat(path); err != nil {
		return nil, err
	}

	o := &watchOptions{debounce: defaultDebounce}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("ndconf: create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("ndconf: watch %s: %w", filepath.Dir(path), err)
	}

	return &Watcher{
		path:     path,
		callback: callback,
		debounce: o.debounce,
		watcher:  fw,
		done:     make(chan struct{}),
	}, nil
}

// Start 启动监视 goroutine。
// 重复调用返回 [ErrWatcherRunning]；已停止的监视器返回 [ErrWatcherStopped]。
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return ErrWatcherStopped
	}
	if w.running {
		return ErrWatcherRunning
	}
	w.running = true

	go w.loop()
	return nil
}

// Stop 停止监视并释放资源。幂等。
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.stopped = true
	w.running = false

	close(w.done)
	if w.timer != nil {
		w.timer.Stop()
	}
	return w.watcher.Close()
}

// loop 消费文件系统事件，带防抖地触发重载。
func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.callback(nil, fmt.Errorf("ndconf: watch error: %w", err))
		}
	}
}

// relevant 过滤出针对目标文件的写入类事件。
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

// scheduleReload 重置防抖定时器，到期后执行一次重载。
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	// Stop 之后可能有已触发的定时器残留，静默丢弃
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	w.callback(Load(w.path))
}
