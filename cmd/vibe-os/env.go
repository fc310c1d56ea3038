package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vibeos/vibe-os/internal/audio"
	"github.com/vibeos/vibe-os/internal/config"
	"github.com/vibeos/vibe-os/internal/logging"
	"github.com/vibeos/vibe-os/internal/model"
	"github.com/vibeos/vibe-os/internal/store"
	"github.com/vibeos/vibe-os/internal/tui/state"
)

// env bundles what every command needs: config, logger and repository.
type env struct {
	cfg     *config.Config
	log     *logrus.Logger
	logFile io.Closer
	repo    *store.Repository
}

func openEnv(opts *rootOptions) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dir, err := cfg.StorageDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	log, logFile, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File, Dir: dir})
	if err != nil {
		return nil, err
	}

	backend := cfg.Storage.Backend
	if opts.ephemeral {
		backend = store.BackendMemory
	}
	kv, err := store.Open(backend, dir)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	log.WithField("backend", backend).WithField("dir", dir).Debug("storage opened")

	repo := store.NewRepository(kv, logging.Component(log, "store"))
	repo.SetDefaultTheme(cfg.UI.Theme)

	return &env{
		cfg:     cfg,
		log:     log,
		logFile: logFile,
		repo:    repo,
	}, nil
}

func (e *env) Close() error {
	return errors.Join(e.repo.Close(), e.logFile.Close())
}

func (e *env) effects() audio.Effects {
	if !e.cfg.Audio.Sounds {
		return audio.Silent{}
	}
	return audio.BeepEffects{Log: logging.Component(e.log, "audio")}
}

func (e *env) notifier() audio.Notifier {
	if !e.cfg.Audio.Notifications {
		return audio.Silent{}
	}
	return audio.DesktopNotifier{}
}

func (e *env) tuiDeps() state.Deps {
	return state.Deps{
		Repo:     e.repo,
		Log:      logging.Component(e.log, "tui"),
		Player:   audio.NewExecPlayer(e.cfg.Audio.Player, e.cfg.Audio.StreamURL),
		Effects:  e.effects(),
		Notifier: e.notifier(),
	}
}

func today() string {
	return model.FormatDate(time.Now())
}
