package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/database"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/repositories"
)

// useRecordStore points the global record store client at the test server
// for the duration of one test.
func useRecordStore(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	previous := database.Store
	database.Store = database.NewRecordStore(server.URL, 5*time.Second)
	t.Cleanup(func() {
		database.Store = previous
		server.Close()
	})
	return server
}

func TestAppointmentStoreFetchAll(t *testing.T) {
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "patient": 10, "scheduled_at": "2024-01-20T10:30", "status": "pending"},
			{"id": 2, "patient": 11, "scheduled_at": "2024-01-20T09:00", "status": "confirmed"}
		]`))
	}))

	store := NewAppointmentStore(repositories.NewAppointmentRepository())
	appointments, err := store.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, appointments, 2)

	snapshot, failed, loaded := store.Snapshot()
	assert.Len(t, snapshot, 2)
	assert.False(t, failed)
	assert.True(t, loaded)
}

func TestAppointmentStoreFetchFailureClearsList(t *testing.T) {
	responses := []func(w http.ResponseWriter){
		func(w http.ResponseWriter) {
			_, _ = w.Write([]byte(`[{"id": 1, "patient": 10, "scheduled_at": "2024-01-20T10:30", "status": "pending"}]`))
		},
		func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusBadGateway)
		},
	}
	call := 0
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		responses[call](w)
		call++
	}))

	store := NewAppointmentStore(repositories.NewAppointmentRepository())
	_, err := store.FetchAll(context.Background())
	require.NoError(t, err)

	err = store.Invalidate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrFetch)

	// A failed refresh never leaves stale records behind.
	snapshot, failed, loaded := store.Snapshot()
	assert.Empty(t, snapshot)
	assert.True(t, failed)
	assert.True(t, loaded)
}

func TestAppointmentStoreRecoversAfterFailure(t *testing.T) {
	healthy := false
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"id": 3, "patient": 12, "scheduled_at": "2024-01-21T09:30", "status": "confirmed"}]`))
	}))

	store := NewAppointmentStore(repositories.NewAppointmentRepository())
	_, err := store.FetchAll(context.Background())
	require.Error(t, err)

	healthy = true
	require.NoError(t, store.Invalidate(context.Background()))

	snapshot, failed, _ := store.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, int64(3), snapshot[0].ID)
	assert.False(t, failed)
}

func TestAppointmentStoreFetchFailureOnUnparsableBody(t *testing.T) {
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"detail": "not a list"}`))
	}))

	store := NewAppointmentStore(repositories.NewAppointmentRepository())
	_, err := store.FetchAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrFetch)
}

func TestAppointmentStoreSnapshotIsACopy(t *testing.T) {
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "patient": 10, "scheduled_at": "2024-01-20T10:30", "status": "pending"}]`))
	}))

	store := NewAppointmentStore(repositories.NewAppointmentRepository())
	_, err := store.FetchAll(context.Background())
	require.NoError(t, err)

	snapshot, _, _ := store.Snapshot()
	snapshot[0].Status = models.StatusCancelled

	fresh, _, _ := store.Snapshot()
	assert.Equal(t, models.StatusPending, fresh[0].Status)
}
