package main

import (
	"github.com/spf13/cobra"

	"github.com/ohJeez/e-commerece-website/internal/client/guard"
	"github.com/ohJeez/e-commerece-website/internal/client/kvstore"
	"github.com/ohJeez/e-commerece-website/internal/client/mode"
	"github.com/ohJeez/e-commerece-website/internal/client/session"
	"github.com/ohJeez/e-commerece-website/internal/client/store"
	"github.com/ohJeez/e-commerece-website/internal/client/ui"
	"github.com/ohJeez/e-commerece-website/internal/pkg/config"
	"github.com/ohJeez/e-commerece-website/pkg/logger"
)

// app holds the per-run client wiring, built once in the root command's
// PersistentPreRunE: detect the mode, fix it, and hand every command the
// same facade.
type app struct {
	kv      *kvstore.Store
	session *session.Session
	store   store.Store
	guard   *guard.Guard
	notify  *ui.Notifier
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "shop",
		Short:         "EcoShop storefront client",
		Long:          "Browse products, manage a cart and (as admin) maintain the catalog,\nagainst the remote service when reachable and an on-device store otherwise.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.kv != nil {
				_ = a.kv.Close()
			}
		},
	}

	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newProductsCmd(a),
		newCartCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg := config.LoadClient()
	log := logger.Init(logger.Options{
		Level:     cfg.LogLevel,
		Pretty:    true,
		Component: "shop",
	})

	kv, err := kvstore.Open(kvstore.Config{Path: cfg.StorePath}, log)
	if err != nil {
		return err
	}
	a.kv = kv

	store.SeedLocal(kv, log)

	m := mode.Detect(cmd.Context(), cfg.APIBase, nil, log)
	log.Debug().Str("mode", string(m)).Msg("session mode fixed")

	a.session = session.New(m)
	a.store = store.New(a.session, kv, cfg.APIBase, log)
	a.guard = guard.New(a.store)
	a.notify = ui.NewNotifier(cmd.OutOrStdout())
	return nil
}
