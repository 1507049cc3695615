package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fintrack/internal/core"
)

var errAlwaysDown = errors.New("broker unavailable")

// fakeStore is an in-memory Store that mimics the repository contract:
// date-descending listing with stable insertion order, partial-merge
// updates, idempotent deletes.
type fakeStore struct {
	txns    []core.Transaction
	nextID  int
	pingErr error
	listErr error
}

func (f *fakeStore) Insert(_ context.Context, t core.Transaction) (core.Transaction, error) {
	f.nextID++
	t.ID = fmt.Sprintf("txn-%d", f.nextID)
	if t.Category == "" {
		t.Category = core.DefaultCategory
	}
	f.txns = append(f.txns, t)
	return t, nil
}

func (f *fakeStore) ListAll(context.Context) ([]core.Transaction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := append([]core.Transaction(nil), f.txns...)
	// insertion-stable date-descending, like the SQL ORDER BY
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Date.Before(out[j].Date.Time); j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, id string, patch core.TransactionPatch) (core.Transaction, error) {
	for i, t := range f.txns {
		if t.ID == id {
			f.txns[i] = patch.Apply(t)
			return f.txns[i], nil
		}
	}
	return core.Transaction{}, core.ErrNotFound
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	for i, t := range f.txns {
		if t.ID == id {
			f.txns = append(f.txns[:i], f.txns[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

type fakePublisher struct {
	published []string
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, action, id string) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, action+":"+id)
	return nil
}

func newTestServer(store *fakeStore, pub EventPublisher) *Server {
	srv := NewServer(":0", store, pub)
	srv.rateLimiter.stop()
	return srv
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestIndexAndHealth(t *testing.T) {
	srv := newTestServer(&fakeStore{}, nil)

	rr := doRequest(t, srv, http.MethodGet, "/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("index status=%d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Personal Finance Tracker") {
		t.Fatal("index body missing heading")
	}

	for _, path := range []string{"/healthz", "/readyz"} {
		rr := doRequest(t, srv, http.MethodGet, path, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestReadyReportsStoreFailure(t *testing.T) {
	srv := newTestServer(&fakeStore{pingErr: errors.New("db gone")}, nil)
	rr := doRequest(t, srv, http.MethodGet, "/readyz", "")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(&fakeStore{}, nil)
	rr := doRequest(t, srv, http.MethodGet, "/transactions", "")
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatal("missing X-Content-Type-Options header")
	}
	if rr.Header().Get("Content-Security-Policy") == "" {
		t.Fatal("missing Content-Security-Policy header")
	}
}
