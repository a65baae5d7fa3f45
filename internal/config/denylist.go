package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/gagliardetto/solana-go"
	"github.com/zeromicro/go-zero/core/logx"
	"gopkg.in/yaml.v2"
)

type denylistFile struct {
	Pools []string `yaml:"pools"`
}

// Denylist is an operator-maintained list of pool ids rejected at admission
// regardless of their on-record pause flag. The backing yaml file is watched
// and reloaded on change.
type Denylist struct {
	mu        sync.RWMutex
	path      string
	pools     map[solana.PublicKey]struct{}
	done      chan struct{}
	closeOnce sync.Once
}

func NewDenylist(path string) (*Denylist, error) {
	d := &Denylist{
		path:  path,
		pools: make(map[solana.PublicKey]struct{}),
		done:  make(chan struct{}),
	}
	if path == "" {
		return d, nil
	}
	if err := d.Reload(); err != nil {
		return nil, err
	}
	go d.watch()
	return d, nil
}

// Close stops the file watcher. Safe to call more than once, and on a
// denylist that never started one.
func (d *Denylist) Close() {
	d.closeOnce.Do(func() { close(d.done) })
}

// Contains reports whether the pool is denylisted.
func (d *Denylist) Contains(pool solana.PublicKey) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.pools[pool]
	return ok
}

// Reload re-reads the backing file. Unparseable pool ids are skipped.
func (d *Denylist) Reload() error {
	data, err := os.ReadFile(d.path)
	if err != nil {
		return err
	}
	var file denylistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	pools := make(map[solana.PublicKey]struct{}, len(file.Pools))
	for _, raw := range file.Pools {
		pk, err := solana.PublicKeyFromBase58(raw)
		if err != nil {
			logx.Errorf("denylist: skip invalid pool id %q: %v", raw, err)
			continue
		}
		pools[pk] = struct{}{}
	}

	d.mu.Lock()
	d.pools = pools
	d.mu.Unlock()
	return nil
}

func (d *Denylist) watch() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logx.Errorf("denylist: watcher init: %v", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(d.path)); err != nil {
		logx.Errorf("denylist: watch %s: %v", d.path, err)
		return
	}

	for {
		select {
		case <-d.done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(d.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := d.Reload(); err != nil {
				logx.Errorf("denylist: reload: %v", err)
			} else {
				logx.Infof("denylist: reloaded from %s", d.path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logx.Errorf("denylist: watcher: %v", err)
		}
	}
}
