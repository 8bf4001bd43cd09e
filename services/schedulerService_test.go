package services

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/database"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/models"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/repositories"
	"github.com/bella-thehacker/Life-Line-Hospital-Mangement-System/utils"
)

func newScheduler(onScheduled func(ctx context.Context) error) *SchedulerService {
	return NewSchedulerService(
		repositories.NewPatientRepository(),
		repositories.NewDoctorRepository(),
		repositories.NewAppointmentRepository(),
		onScheduled,
	)
}

func validDraft() models.AppointmentDraft {
	return models.AppointmentDraft{
		Patient: 10,
		Date:    "2024-01-22",
		Time:    "14:00",
		Type:    "Checkup",
	}
}

func TestScheduleSubmitsAndRefreshes(t *testing.T) {
	var posted models.CreateAppointment
	postCalls := int32(0)
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/appointments/", r.URL.Path)
		atomic.AddInt32(&postCalls, 1)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 99}`))
	}))

	refreshed := int32(0)
	scheduler := newScheduler(func(ctx context.Context) error {
		atomic.AddInt32(&refreshed, 1)
		return nil
	})

	created, err := scheduler.Schedule(context.Background(), validDraft())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 99}`, string(created))

	assert.Equal(t, int32(1), postCalls)
	assert.Equal(t, int32(1), refreshed)
	assert.Equal(t, int64(10), posted.Patient)
	assert.Equal(t, "2024-01-22T14:00", posted.ScheduledAt)
	assert.Equal(t, models.StatusPending, posted.Status, "blank status defaults to pending")
}

func TestScheduleValidationFailureSkipsNetwork(t *testing.T) {
	calls := int32(0)
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))

	refreshed := int32(0)
	scheduler := newScheduler(func(ctx context.Context) error {
		atomic.AddInt32(&refreshed, 1)
		return nil
	})

	tests := []struct {
		name  string
		draft models.AppointmentDraft
	}{
		{"missing patient", models.AppointmentDraft{Date: "2024-01-22", Time: "14:00"}},
		{"missing date", models.AppointmentDraft{Patient: 10, Time: "14:00"}},
		{"malformed date", models.AppointmentDraft{Patient: 10, Date: "22/01/2024", Time: "14:00"}},
		{"malformed time", models.AppointmentDraft{Patient: 10, Date: "2024-01-22", Time: "2pm"}},
		{"unknown status", models.AppointmentDraft{Patient: 10, Date: "2024-01-22", Time: "14:00", Status: "done"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scheduler.Schedule(context.Background(), tt.draft)
			require.Error(t, err)
			assert.True(t, utils.IsValidationError(err))
		})
	}

	assert.Equal(t, int32(0), calls, "validation failures must not reach the record store")
	assert.Equal(t, int32(0), refreshed)
}

func TestScheduleSubmitFailureSkipsRefresh(t *testing.T) {
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	refreshed := int32(0)
	scheduler := newScheduler(func(ctx context.Context) error {
		atomic.AddInt32(&refreshed, 1)
		return nil
	})

	_, err := scheduler.Schedule(context.Background(), validDraft())
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrSubmit)
	assert.Equal(t, int32(0), refreshed)
}

func TestScheduleKeepsExplicitStatus(t *testing.T) {
	var posted models.CreateAppointment
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&posted))
		_, _ = w.Write([]byte(`{"id": 100}`))
	}))

	scheduler := newScheduler(nil)
	draft := validDraft()
	draft.Status = models.StatusConfirmed

	_, err := scheduler.Schedule(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, posted.Status)
}

func TestScheduleSucceedsWhenRefreshFails(t *testing.T) {
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 101}`))
	}))

	scheduler := newScheduler(func(ctx context.Context) error {
		return database.ErrFetch
	})

	created, err := scheduler.Schedule(context.Background(), validDraft())
	require.NoError(t, err, "a failed refresh must not fail the create")
	assert.NotEmpty(t, created)
}

func TestLoadReferenceLists(t *testing.T) {
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/patients/":
			_, _ = w.Write([]byte(`[{"id": 1, "name": "Wanjiku Kamau"}]`))
		case "/api/doctors/":
			_, _ = w.Write([]byte(`[{"id": 2, "name": "Dr. Njoroge Mwangi", "specialization": "Cardiology"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	lists := newScheduler(nil).LoadReferenceLists(context.Background())
	assert.Equal(t, []Option{{Value: 1, Label: "Wanjiku Kamau"}}, lists.Patients)
	assert.Equal(t, []Option{{Value: 2, Label: "Dr. Njoroge Mwangi"}}, lists.Doctors)
	assert.Equal(t, AppointmentTypes, lists.Types)
}

func TestLoadReferenceListsPartialFailure(t *testing.T) {
	useRecordStore(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/doctors/" {
			_, _ = w.Write([]byte(`[{"id": 2, "name": "Dr. Amina Hassan"}]`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))

	lists := newScheduler(nil).LoadReferenceLists(context.Background())
	assert.Empty(t, lists.Patients, "failed fetch leaves the selector empty")
	assert.Len(t, lists.Doctors, 1)
	assert.Equal(t, AppointmentTypes, lists.Types)
}
