package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll_SendsWorkflowPayload(t *testing.T) {
	var gotBody enrollRequest
	var gotMethod, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	g := New(Endpoints{Enroll: srv.URL})
	err := g.Enroll(context.Background(), "Sony WH-1000XM5", 25000, 22000)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	require.Len(t, gotBody.Products, 1)
	assert.Equal(t, "Sony WH-1000XM5", gotBody.Products[0].ProductName)
	assert.Equal(t, 25000.0, gotBody.Products[0].MyPrice)
	assert.Equal(t, 22000.0, gotBody.Products[0].MinPrice)
}

func TestEnroll_Non2xxCarriesStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"workflow exploded"}`))
	}))
	defer srv.Close()

	g := New(Endpoints{Enroll: srv.URL})
	err := g.Enroll(context.Background(), "X", 1000, 900)

	var ee *EnrollError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, http.StatusInternalServerError, ee.StatusCode)
	assert.Equal(t, "workflow exploded", ee.Message)
}

func TestEnroll_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	g := New(Endpoints{Enroll: srv.URL})
	err := g.Enroll(context.Background(), "X", 1000, 900)

	var ee *EnrollError
	require.ErrorAs(t, err, &ee)
	assert.Zero(t, ee.StatusCode, "transport errors have no HTTP status")
	assert.Error(t, ee.Unwrap())
}

func TestFetch_MapsItemsAndDropsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`[
			{"id":"x","product_name":"Widget","my_price":100,"min_price":90},
			{"product_name":"no id, dropped","my_price":5},
			{"id":"y","product_name":"Gadget","my_price":200,"min_price":150,
			 "competitor_price":180,"ai_strategy":"MATCH_PRICE",
			 "latest_intel":"undercut by 20","status":["approved"]}
		]`))
	}))
	defer srv.Close()

	g := New(Endpoints{Fetch: srv.URL})
	records, err := g.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2, "malformed rows are dropped, not fatal")

	assert.Equal(t, "x", records[0].ID)
	assert.Equal(t, 0.0, records[0].CompetitorPrice)
	assert.Equal(t, "Waiting for analysis...", records[0].Reasoning)

	assert.Equal(t, "y", records[1].ID)
	assert.Equal(t, 180.0, records[1].CompetitorPrice)
	assert.Equal(t, "undercut by 20", records[1].Reasoning)
}

func TestFetch_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	g := New(Endpoints{Fetch: srv.URL})
	_, err := g.Fetch(context.Background())

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusBadGateway, fe.StatusCode)
}

func TestFetch_UndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	g := New(Endpoints{Fetch: srv.URL})
	_, err := g.Fetch(context.Background())

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Zero(t, fe.StatusCode)
}

func TestApprove_QueryParameters(t *testing.T) {
	var got map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		q := r.URL.Query()
		got = map[string]string{
			"action":     q.Get("action"),
			"new_price":  q.Get("new_price"),
			"product_id": q.Get("product_id"),
		}
	}))
	defer srv.Close()

	g := New(Endpoints{Approve: srv.URL})
	err := g.Approve(context.Background(), "p-2", 129000)
	require.NoError(t, err)

	assert.Equal(t, "done", got["action"])
	assert.Equal(t, "129000", got["new_price"])
	assert.Equal(t, "p-2", got["product_id"])
}

func TestApprove_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	g := New(Endpoints{Approve: srv.URL})
	err := g.Approve(context.Background(), "p-2", 129000)

	var ae *ApproveError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "p-2", ae.ID)
	assert.Equal(t, http.StatusServiceUnavailable, ae.StatusCode)
	assert.True(t, IsApproveFailure(err))
}

func TestBulkDelete_SendsIDs(t *testing.T) {
	var got struct {
		IDs []string `json:"ids"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
	}))
	defer srv.Close()

	g := New(Endpoints{Delete: srv.URL})
	err := g.BulkDelete(context.Background(), []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, got.IDs)
}

func TestBulkDelete_Non2xxIsSoft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := New(Endpoints{Delete: srv.URL})
	err := g.BulkDelete(context.Background(), []string{"a"})

	require.Error(t, err)
	assert.True(t, IsDeleteSync(err))
	var de *DeleteSyncError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, http.StatusInternalServerError, de.StatusCode)
}

func TestBulkDelete_TransportErrorDistinctFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	g := New(Endpoints{Delete: srv.URL})
	err := g.BulkDelete(context.Background(), []string{"a"})

	var de *DeleteSyncError
	require.ErrorAs(t, err, &de)
	assert.Zero(t, de.StatusCode)
	assert.Error(t, de.Unwrap())
}
