package params

import (
	"github.com/evernode-go/evernode-client/log"
	"github.com/fsnotify/fsnotify"
)

// WatchConfigFile watch the config file and reload a fresh validated
// snapshot when it changes. A reload that fails validation keeps the
// previous snapshot in place.
func WatchConfigFile(configFile string, stopCh <-chan struct{}) error {
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err = watch.Add(configFile); err != nil {
		_ = watch.Close()
		return err
	}
	go startWatcher(watch, configFile, stopCh)
	return nil
}

func startWatcher(watch *fsnotify.Watcher, configFile string, stopCh <-chan struct{}) {
	log.Info("start config file watch", "configFile", configFile)
	defer func() {
		log.Info("stop config file watch", "configFile", configFile)
		_ = watch.Close()
	}()

	for {
		select {
		case <-stopCh:
			return
		case ev, ok := <-watch.Events:
			if !ok {
				return
			}
			log.Trace("config file watch event", "event", ev)
			if ev.Op&fsnotify.Write == fsnotify.Write ||
				ev.Op&fsnotify.Create == fsnotify.Create {
				if err := reloadConfig(configFile); err != nil {
					log.Warn("reload config failed, keep old config", "configFile", configFile, "err", err)
				}
			}
		case err, ok := <-watch.Errors:
			if !ok {
				return
			}
			log.Error("config file watch error", "err", err)
		}
	}
}
