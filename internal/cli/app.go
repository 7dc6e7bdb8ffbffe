package cli

import (
	"net/http"

	"github.com/roach88/repricer/internal/config"
	"github.com/roach88/repricer/internal/controller"
	"github.com/roach88/repricer/internal/gateway"
	"github.com/roach88/repricer/internal/model"
	"github.com/roach88/repricer/internal/selection"
	"github.com/roach88/repricer/internal/store"
)

// app holds the reconciliation core wired together for one command run.
type app struct {
	cfg        config.Config
	slot       *store.SQLiteSlot
	store      *store.Store
	selection  *selection.Manager
	controller *controller.Controller
}

// openApp loads config, opens the durable slot, and wires store, gateway,
// selection, and controller. needRemote guards commands that talk to the
// remote authority; purely local commands (list) skip endpoint validation.
func openApp(opts *RootOptions, needRemote bool) (*app, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	if needRemote {
		if err := cfg.ValidateEndpoints(); err != nil {
			return nil, WrapExitError(ExitCommandError, "incomplete config", err)
		}
	}

	slot, err := store.OpenSlot(cfg.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open database", err)
	}

	st := store.New(slot)
	st.Load(model.SeedRecords())

	sel := selection.New()
	gw := gateway.New(gateway.Endpoints{
		Enroll:  cfg.Endpoints.Enroll,
		Fetch:   cfg.Endpoints.Fetch,
		Approve: cfg.Endpoints.Approve,
		Delete:  cfg.Endpoints.Delete,
	}, gateway.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout()}))

	return &app{
		cfg:        cfg,
		slot:       slot,
		store:      st,
		selection:  sel,
		controller: controller.New(st, gw, sel),
	}, nil
}

func (a *app) Close() error {
	return a.slot.Close()
}
