// Package gateway adapts the four remote workflow operations (enroll,
// fetch, approve, bulk delete) and translates wire payloads into
// ProductRecords. All transport and HTTP-level failures are caught here
// and converted to the typed errors in errors.go; nothing past this
// boundary sees a raw *url.Error.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/roach88/repricer/internal/model"
)

// Endpoints names the four remote operation URLs. Each operation is an
// independent workflow execution with its own endpoint.
type Endpoints struct {
	Enroll  string
	Fetch   string
	Approve string
	Delete  string
}

// Gateway issues the remote sync operations. All calls are single-attempt:
// no internal retry, no timeout beyond the HTTP client's own.
type Gateway struct {
	endpoints Endpoints
	client    *http.Client
	logger    *slog.Logger
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		g.client = c
	}
}

// WithLogger overrides the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = l
	}
}

// New creates a Gateway for the given endpoints.
func New(endpoints Endpoints, opts ...Option) *Gateway {
	g := &Gateway{
		endpoints: endpoints,
		client:    http.DefaultClient,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type enrollProduct struct {
	ProductName string  `json:"product_name"`
	MyPrice     float64 `json:"my_price"`
	MinPrice    float64 `json:"min_price"`
}

type enrollRequest struct {
	Products []enrollProduct `json:"products"`
}

// Enroll submits a new product to the remote monitoring workflow.
// Any 2xx response means accepted; the body is not required.
func (g *Gateway) Enroll(ctx context.Context, name string, myPrice, floorPrice float64) error {
	payload := enrollRequest{
		Products: []enrollProduct{{ProductName: name, MyPrice: myPrice, MinPrice: floorPrice}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return &EnrollError{Message: err.Error(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoints.Enroll, bytes.NewReader(body))
	if err != nil {
		return &EnrollError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return &EnrollError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &EnrollError{StatusCode: resp.StatusCode, Message: enrollFailureMessage(resp)}
	}
	return nil
}

// enrollFailureMessage pulls the workflow's error message out of a non-2xx
// response body, if it sent one.
func enrollFailureMessage(resp *http.Response) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return "unknown error"
	}
	return body.Message
}

// Fetch retrieves the authority's current view of all monitored products.
// Malformed rows are dropped individually with a warning; one bad row from
// the third-party feed never aborts the whole fetch.
func (g *Gateway) Fetch(ctx context.Context) ([]model.ProductRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoints.Fetch, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var items []model.FetchItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decode response: %w", err)}
	}

	records := make([]model.ProductRecord, 0, len(items))
	for i, item := range items {
		rec, err := item.Record()
		if err != nil {
			g.logger.Warn("dropping malformed fetch item", "index", i, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Approve confirms a pricing decision with the remote authority.
// The new price travels as a query parameter alongside action=done.
func (g *Gateway) Approve(ctx context.Context, id string, newPrice float64) error {
	u, err := url.Parse(g.endpoints.Approve)
	if err != nil {
		return &ApproveError{ID: id, Err: err}
	}
	q := u.Query()
	q.Set("action", "done")
	q.Set("new_price", strconv.FormatFloat(newPrice, 'f', -1, 64))
	q.Set("product_id", id)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return &ApproveError{ID: id, Err: err}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return &ApproveError{ID: id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &ApproveError{ID: id, StatusCode: resp.StatusCode}
	}
	return nil
}

// BulkDelete asks the remote catalog to drop the given ids. The call is
// best-effort: failures come back as a DeleteSyncError so the caller can
// surface a warning, but the local deletion has already happened and is
// never undone. Transport errors and non-2xx responses are kept distinct
// for logging.
func (g *Gateway) BulkDelete(ctx context.Context, ids []string) error {
	payload := struct {
		IDs []string `json:"ids"`
	}{IDs: ids}
	body, err := json.Marshal(payload)
	if err != nil {
		return &DeleteSyncError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoints.Delete, bytes.NewReader(body))
	if err != nil {
		return &DeleteSyncError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("bulk delete transport error", "error", err)
		return &DeleteSyncError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return &DeleteSyncError{StatusCode: resp.StatusCode}
	}
	return nil
}
