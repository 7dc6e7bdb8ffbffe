// Package controller orchestrates operator actions against the store and
// the remote gateway: apply the optimistic mutation, persist, await
// confirmation, revert on failure.
//
// The revert policy is deliberately asymmetric. A failed approve means the
// remote price did NOT change, so the local APPROVED badge would be a lie
// and must be reverted. A failed delete only means the remote catalog may
// still hold the row; the operator's intent (removing it from view) is
// already satisfied, so the local deletion stands and the failure is
// surfaced as a sync warning.
package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/repricer/internal/model"
	"github.com/roach88/repricer/internal/selection"
	"github.com/roach88/repricer/internal/store"
)

// ErrUnknownProduct is returned when an action names an id the store does
// not hold.
var ErrUnknownProduct = errors.New("unknown product id")

// RemoteGateway is the slice of the sync gateway the controller needs.
type RemoteGateway interface {
	Enroll(ctx context.Context, name string, myPrice, floorPrice float64) error
	Fetch(ctx context.Context) ([]model.ProductRecord, error)
	Approve(ctx context.Context, id string, newPrice float64) error
	BulkDelete(ctx context.Context, ids []string) error
}

// Controller reconciles operator intents with the remote authority.
//
// Each action's optimistic mutation plus persist runs as one synchronous
// step; only the network round trip afterward blocks. Actions on different
// ids are independent. A repeated approve on the same id is tolerated as
// an idempotent retry: no lock is taken and the same remote call is
// simply reissued.
type Controller struct {
	store     *store.Store
	gateway   RemoteGateway
	selection *selection.Manager
	ids       IDGenerator
	logger    *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDGenerator overrides the default UUIDv7 generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *Controller) {
		c.ids = g
	}
}

// WithLogger overrides the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// New creates a Controller over the given store, gateway, and selection.
func New(st *store.Store, gw RemoteGateway, sel *selection.Manager, opts ...Option) *Controller {
	c := &Controller{
		store:     st,
		gateway:   gw,
		selection: sel,
		ids:       UUIDv7Generator{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddInput is the operator's add-product form.
type AddInput struct {
	Name       string
	MyPrice    float64
	FloorPrice float64
}

func (in AddInput) validate() error {
	if in.Name == "" {
		return errors.New("product name is required")
	}
	if in.MyPrice < 0 {
		return errors.New("price must not be negative")
	}
	if in.FloorPrice < 0 {
		return errors.New("floor price must not be negative")
	}
	return nil
}

// AddProduct enrolls a new product with the remote workflow and, only on
// success, inserts a provisional record. On failure the store is untouched
// and no new record becomes visible.
func (c *Controller) AddProduct(ctx context.Context, in AddInput) (model.ProductRecord, error) {
	if err := in.validate(); err != nil {
		return model.ProductRecord{}, err
	}

	if err := c.gateway.Enroll(ctx, in.Name, in.MyPrice, in.FloorPrice); err != nil {
		c.logger.Info("enroll rejected", "name", in.Name, "error", err)
		return model.ProductRecord{}, err
	}

	rec := model.NewProvisional(c.ids.Generate(), in.Name, in.MyPrice, in.FloorPrice)
	c.store.UpsertOne(rec)
	c.persist()
	c.logger.Debug("product enrolled", "id", rec.ID, "name", rec.Name)
	return rec, nil
}

// Approve optimistically marks the record APPROVED and persists before the
// remote call, keeping the interface responsive. If the remote approval
// fails, exactly that record's status is reverted to the captured value
// and persisted again, so the operator sees the true settled state within
// one round trip.
func (c *Controller) Approve(ctx context.Context, id string) error {
	rec, ok := c.store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, id)
	}

	prev := rec.Status
	rec.Status = model.StatusApproved
	c.store.UpsertOne(rec)
	c.persist()

	if err := c.gateway.Approve(ctx, id, rec.ApprovalPrice()); err != nil {
		rec.Status = prev
		c.store.UpsertOne(rec)
		c.persist()
		c.logger.Info("approve failed, status reverted", "id", id, "error", err)
		return err
	}

	c.logger.Debug("approve confirmed", "id", id, "new_price", rec.ApprovalPrice())
	return nil
}

// DeleteSelected removes the given records locally, then asks the remote
// catalog to drop them. The local deletion is irreversible regardless of
// the remote outcome; a remote failure is returned as a soft sync warning.
// The selection is cleared unconditionally after the attempt.
func (c *Controller) DeleteSelected(ctx context.Context, ids []string) error {
	defer c.selection.SelectNone()

	if len(ids) == 0 {
		return nil
	}

	removed := c.store.RemoveMany(ids)
	c.selection.Remove(ids...)
	c.persist()
	c.logger.Debug("records removed locally", "requested", len(ids), "removed", len(removed))

	if err := c.gateway.BulkDelete(ctx, ids); err != nil {
		c.logger.Warn("delete applied locally but remote sync failed", "ids", len(ids), "error", err)
		return err
	}
	return nil
}

// Refresh replaces the whole collection with the authority's current view.
// On failure the store keeps its prior collection. Returns the number of
// records after a successful refresh.
func (c *Controller) Refresh(ctx context.Context) (int, error) {
	records, err := c.gateway.Fetch(ctx)
	if err != nil {
		c.logger.Info("refresh failed, keeping current collection", "error", err)
		return 0, err
	}

	c.store.ReplaceAll(records)

	keep := make([]string, len(records))
	for i, r := range records {
		keep[i] = r.ID
	}
	c.selection.Retain(keep)

	c.persist()
	c.logger.Debug("collection refreshed", "records", len(records))
	return len(records), nil
}

// persist writes the store to the durable slot. Persist failures are not
// fatal to the action; memory remains authoritative until the next write.
func (c *Controller) persist() {
	if err := c.store.Persist(); err != nil {
		c.logger.Error("persist failed", "error", err)
	}
}
