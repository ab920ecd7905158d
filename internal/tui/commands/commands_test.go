package commands

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"roomboard/internal/api"
	"roomboard/internal/store"
)

func testClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, "test-token", zap.NewNop())
}

func testStore(t *testing.T) *store.SQLite {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadDashboard(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/rooms":
			_, _ = w.Write([]byte(`{"rooms":[{"emailAddress":"board@example.org","displayName":"Boardroom"}]}`))
		case "/api/working-hours/board@example.org":
			http.NotFound(w, r)
		case "/api/meetings":
			_, _ = w.Write([]byte(`{"meetings":[{"id":"m1","room":"Boardroom","start":"2025-01-06T08:00:00Z","end":"2025-01-06T09:00:00Z","subject":"Standup","isOrganizer":true}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
		}
	}))
	cache := testStore(t)

	msg := LoadDashboard(client, cache)()
	loaded, ok := msg.(DashboardLoadedMsg)
	if !ok {
		t.Fatalf("expected DashboardLoadedMsg, got %T: %v", msg, msg)
	}
	if loaded.FromCache {
		t.Error("fresh load must not be flagged as cached")
	}
	if len(loaded.Rooms) != 1 || loaded.Rooms[0].DisplayName != "Boardroom" {
		t.Fatalf("rooms = %+v", loaded.Rooms)
	}
	if !loaded.Rooms[0].Editable {
		t.Error("room without a document should default to editable")
	}
	if len(loaded.Meetings) != 1 || loaded.Meetings[0].Subject != "Standup" {
		t.Fatalf("meetings = %+v", loaded.Meetings)
	}
}

func TestLoadDashboard_FallsBackToSnapshot(t *testing.T) {
	okClient := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/rooms":
			_, _ = w.Write([]byte(`{"rooms":[{"emailAddress":"board@example.org","displayName":"Boardroom"}]}`))
		case "/api/working-hours/board@example.org":
			http.NotFound(w, r)
		case "/api/meetings":
			_, _ = w.Write([]byte(`{"meetings":[]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	cache := testStore(t)

	// Warm the cache with a successful load.
	if _, ok := LoadDashboard(okClient, cache)().(DashboardLoadedMsg); !ok {
		t.Fatal("warm-up load failed")
	}

	brokenClient := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"backend down"}`, http.StatusInternalServerError)
	}))

	msg := LoadDashboard(brokenClient, cache)()
	loaded, ok := msg.(DashboardLoadedMsg)
	if !ok {
		t.Fatalf("expected snapshot fallback, got %T: %v", msg, msg)
	}
	if !loaded.FromCache {
		t.Error("fallback load must be flagged as cached")
	}
	if len(loaded.Rooms) != 1 || loaded.Rooms[0].DisplayName != "Boardroom" {
		t.Fatalf("rooms = %+v", loaded.Rooms)
	}
}

func TestLoadDashboard_NoCacheReportsError(t *testing.T) {
	brokenClient := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"backend down"}`, http.StatusInternalServerError)
	}))

	msg := LoadDashboard(brokenClient, nil)()
	if _, ok := msg.(ErrMsg); !ok {
		t.Fatalf("expected ErrMsg, got %T: %v", msg, msg)
	}
}
