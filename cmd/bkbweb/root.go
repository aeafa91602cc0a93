package main

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alseiny20/bkbweb-go/internal/admin"
	"github.com/alseiny20/bkbweb-go/internal/api"
	"github.com/alseiny20/bkbweb-go/internal/cart"
	"github.com/alseiny20/bkbweb-go/internal/config"
	"github.com/alseiny20/bkbweb-go/internal/logging"
	"github.com/alseiny20/bkbweb-go/internal/store"
)

// app bundles everything a command needs. Built once per invocation in the
// persistent pre-run, torn down in the post-run.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	store   *store.Store
	backend *api.Client
	cart    *cart.Manager
	session *admin.Session
}

var a *app

var rootCmd = &cobra.Command{
	Use:           "bkbweb",
	Short:         "Boutique BKB — catalogue, panier et commandes en ligne de commande",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		a, err = newApp()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if a == nil {
			return
		}
		if err := a.store.Close(); err != nil {
			a.log.Warn("closing snapshot store", zap.Error(err))
		}
		logging.Sync(a.log)
	},
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	snapshots, err := store.Open(cfg.DataDir, log)
	if err != nil {
		return nil, err
	}

	backend, err := api.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.BackendTimeout})
	if err != nil {
		snapshots.Close()
		return nil, err
	}

	return &app{
		cfg:     cfg,
		log:     log,
		store:   snapshots,
		backend: backend,
		cart:    cart.NewManager(snapshots, log),
		session: admin.NewSession(backend, snapshots, cfg.AdminPassword, log),
	}, nil
}
