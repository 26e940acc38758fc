package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/zulandar/topicrun/internal/config"
	"github.com/zulandar/topicrun/internal/cursor"
	"github.com/zulandar/topicrun/internal/db"
	"github.com/zulandar/topicrun/internal/generator"
	"github.com/zulandar/topicrun/internal/ledger"
	"github.com/zulandar/topicrun/internal/logging"
	"github.com/zulandar/topicrun/internal/notify"
	"github.com/zulandar/topicrun/internal/pipeline"
	"github.com/zulandar/topicrun/internal/record"
	"github.com/zulandar/topicrun/internal/topic"
	"gorm.io/gorm"
)

// app bundles the configuration and shared handles every command needs.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	space *topic.Space
	db    *gorm.DB // nil unless a ledger driver is configured
}

// loadApp reads configuration and the topic space. The database is opened
// only when connectDB is set and a driver is configured.
func loadApp(cmd *cobra.Command, envFile string, connectDB bool) (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg: cfg,
		log: logging.New(cmd.ErrOrStderr(), cfg.LogLevel),
	}

	a.space = topic.DefaultSpace()
	if cfg.SpaceFile != "" {
		a.space, err = topic.LoadSpace(cfg.SpaceFile)
		if err != nil {
			return nil, err
		}
		a.log.Debug().Str("path", cfg.SpaceFile).Msg("loaded topic space")
	}

	if connectDB && cfg.DBEnabled() {
		a.db, err = db.Connect(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// store returns the configured cursor store.
func (a *app) store() (cursor.Store, error) {
	if a.cfg.Cursor == config.CursorDB {
		if a.db == nil {
			return nil, fmt.Errorf("cursor backend db requires a database connection")
		}
		return &cursor.DBStore{DB: a.db}, nil
	}
	return cursor.NewFileStore(a.cfg.StateDir), nil
}

// notifier returns a Fanout for the configured webhooks, or nil when none
// are set.
func (a *app) notifier() (*notify.Fanout, error) {
	var ns []notify.Notifier
	if a.cfg.SlackWebhook != "" {
		ns = append(ns, notify.NewSlack(a.cfg.SlackWebhook))
	}
	if a.cfg.DiscordWebhook != "" {
		d, err := notify.NewDiscord(a.cfg.DiscordWebhook)
		if err != nil {
			return nil, err
		}
		ns = append(ns, d)
	}
	if len(ns) == 0 {
		return nil, nil
	}
	return &notify.Fanout{Notifiers: ns, Log: a.log}, nil
}

// runner wires a pipeline.Runner from configuration.
func (a *app) runner() (*pipeline.Runner, error) {
	args, err := a.cfg.CommandArgs()
	if err != nil {
		return nil, err
	}
	store, err := a.store()
	if err != nil {
		return nil, err
	}
	fan, err := a.notifier()
	if err != nil {
		return nil, err
	}

	r := &pipeline.Runner{
		Space: a.space,
		Store: store,
		Generator: generator.New(generator.Opts{
			Command:     args,
			Model:       a.cfg.Model,
			MaxTokens:   a.cfg.MaxTokens,
			Temperature: a.cfg.Temperature,
			NumCtx:      a.cfg.NumCtx,
		}),
		Writer:   &record.Writer{Dir: a.cfg.OutputDir},
		Notifier: fan,
		Log:      a.log,
	}
	if a.db != nil {
		r.Ledger = ledger.New(a.db)
	}
	return r, nil
}
