package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	agilysysMocks "pmsbridge/infras/agilysys/mocks"
	"pmsbridge/infras/akia"
	"pmsbridge/infras/metrics"
	"pmsbridge/infras/otel/mocks"
	"pmsbridge/internal/domains/reservation/model"
	"pmsbridge/internal/domains/reservation/model/dto"
	reservationMocks "pmsbridge/internal/domains/reservation/mocks"
	"pmsbridge/internal/domains/reservation/service"
	"pmsbridge/shared/cache"
	cacheMocks "pmsbridge/shared/cache/mocks"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const detail = `{
	"confirmationId": "ABC123",
	"status": "Confirmed",
	"guestInfo": [{"firstName":"Ada","lastName":"Lovelace","primary":"true"}],
	"offers": [{"roomType":"VILLA","roomNum":"12"}],
	"stayInfo": {"arrivalDate":"2024-03-10","departureDate":"2024-03-12"}
}`

type fakeArchive struct {
	enabled bool
	err     error
	bodies  [][]byte
}

func (a *fakeArchive) Enabled() bool {
	return a.enabled
}

func (a *fakeArchive) StorePayload(_ context.Context, _ time.Time, body []byte) (string, error) {
	a.bodies = append(a.bodies, body)
	if a.err != nil {
		return "", a.err
	}

	return "webhooks/2024/03/10/x.json", nil
}

type webhookFixture struct {
	sync     *reservationMocks.MockSynchronizer
	agilysys *agilysysMocks.MockClient
	cache    *cacheMocks.MockRedisCache
	archive  *fakeArchive
	metrics  *metrics.Metrics
}

func newWebhookFixture(t *testing.T) webhookFixture {
	ctrl := gomock.NewController(t)

	return webhookFixture{
		sync:     reservationMocks.NewMockSynchronizer(ctrl),
		agilysys: agilysysMocks.NewMockClient(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		archive:  &fakeArchive{},
		metrics:  metrics.New(),
	}
}

func (f webhookFixture) webhook(opts service.WebhookOptions) service.Webhook {
	if opts.Now == nil {
		opts.Now = func() time.Time { return today }
	}

	opts.LockTTL = time.Minute
	opts.LockPoll = time.Millisecond

	return service.NewWebhook(f.sync, f.agilysys, f.cache, f.archive, mocks.NewOtel(), f.metrics, opts)
}

func (f webhookFixture) expectLock() {
	gomock.InOrder(
		f.cache.EXPECT().Lock(gomock.Any(), "sync:lock:ABC123", time.Minute).Return("owner-1", nil),
		f.cache.EXPECT().Unlock(gomock.Any(), "sync:lock:ABC123", "owner-1").Return(nil),
	)
}

func TestHandleEventSkips(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{name: "not json", body: `<xml/>`, wantErr: dto.ErrInvalidPayload},
		{name: "no identifier", body: `{"eventType":"RESERVATION_CREATED","data":{}}`, wantErr: service.ErrIdentifierNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFixture(t)

			result, err := f.webhook(service.WebhookOptions{FetchDetails: true}).HandleEvent(context.Background(), []byte(tt.body))

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, "skipped", result.Outcome)
			assert.Nil(t, result.Report)
		})
	}
}

func TestHandleEventFetchFailure(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f webhookFixture)
	}{
		{
			name: "adapter error",
			setupMock: func(f webhookFixture) {
				f.agilysys.EXPECT().GetReservation(gomock.Any(), "ABC123").Return(nil, errors.New("agilysys auth failed"))
			},
		},
		{
			name: "empty body",
			setupMock: func(f webhookFixture) {
				f.agilysys.EXPECT().GetReservation(gomock.Any(), "ABC123").Return(json.RawMessage(nil), nil)
			},
		},
		{
			name: "malformed record",
			setupMock: func(f webhookFixture) {
				f.agilysys.EXPECT().GetReservation(gomock.Any(), "ABC123").Return(json.RawMessage(`{"guestInfo":"nobody"}`), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFixture(t)
			f.expectLock()
			tt.setupMock(f)

			result, err := f.webhook(service.WebhookOptions{FetchDetails: true}).
				HandleEvent(context.Background(), []byte(`{"eventType":"RESERVATION_CREATED","content":{"confirmationId":"ABC123"}}`))

			assert.ErrorIs(t, err, service.ErrFetchFailed)
			assert.Equal(t, "skipped", result.Outcome)
			assert.Equal(t, "ABC123", result.ConfirmationNumber)
		})
	}
}

func TestHandleEventFetchesAndSyncs(t *testing.T) {
	f := newWebhookFixture(t)
	f.archive.enabled = true
	f.expectLock()

	body := []byte(`{"eventType":"RESERVATION_CREATED","confirmationId":"ABC123"}`)

	f.agilysys.EXPECT().GetReservation(gomock.Any(), "ABC123").Return(json.RawMessage(detail), nil)
	f.agilysys.EXPECT().GetSpaAppointments(gomock.Any(), "ABC123").
		Return(json.RawMessage(`[{"activityDetail":{"confirmationNumber":"SPA-1","activityName":"Massage"},"price":120}]`), nil)
	f.sync.EXPECT().SyncReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reservation model.Reservation) (service.SyncReport, error) {
			assert.Equal(t, "ABC123", reservation.ConfirmationNumber)
			assert.Equal(t, "Lovelace", reservation.Guest.LastName)
			assert.Equal(t, "12", reservation.Stay.RoomNumber)
			require.Len(t, reservation.SpaItems, 1)
			assert.Equal(t, "Massage", reservation.SpaItems[0].ActivityName)

			return service.SyncReport{Path: service.PathUpsert, DealID: "d-1"}, nil
		})

	result, err := f.webhook(service.WebhookOptions{FetchDetails: true, FetchSpa: true}).HandleEvent(context.Background(), body)

	require.NoError(t, err)
	assert.Equal(t, "success", result.Outcome)
	assert.Equal(t, model.EventCreated, result.Event)
	assert.Equal(t, service.PathUpsert, result.Plan.Path)
	require.NotNil(t, result.Report)
	assert.Equal(t, "d-1", result.Report.DealID)
	assert.Equal(t, "webhooks/2024/03/10/x.json", result.ArchiveKey)
	assert.Equal(t, [][]byte{body}, f.archive.bodies)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.WebhookEvents.WithLabelValues("created", "success")))
	assert.Equal(t, 1, testutil.CollectAndCount(f.metrics.SyncDuration))
}

func TestHandleEventSpaFailureDoesNotBlock(t *testing.T) {
	f := newWebhookFixture(t)
	f.expectLock()

	f.agilysys.EXPECT().GetReservation(gomock.Any(), "ABC123").Return(json.RawMessage(detail), nil)
	f.agilysys.EXPECT().GetSpaAppointments(gomock.Any(), "ABC123").Return(nil, errors.New("spa auth failed"))
	f.sync.EXPECT().SyncReservation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reservation model.Reservation) (service.SyncReport, error) {
			assert.Empty(t, reservation.SpaItems)
			return service.SyncReport{Path: service.PathUpsert}, nil
		})

	result, err := f.webhook(service.WebhookOptions{FetchDetails: true, FetchSpa: true}).
		HandleEvent(context.Background(), []byte(`{"confirmationId":"ABC123"}`))

	require.NoError(t, err)
	assert.Equal(t, "success", result.Outcome)
}

func TestHandleEventRouting(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(f webhookFixture)
		wantPath  service.Path
		wantOut   string
	}{
		{
			name: "inline cancellation by status",
			body: `{"payload":{"confirmationNumber":"ABC123","status":"Canceled"}}`,
			setupMock: func(f webhookFixture) {
				f.sync.EXPECT().HandleCancellation(gomock.Any(), gomock.Any()).Return(service.SyncReport{Path: service.PathCancel}, nil)
			},
			wantPath: service.PathCancel,
			wantOut:  "success",
		},
		{
			name: "check in patch",
			body: `{"eventType":"CHECK_IN","confirmationId":"ABC123","status":"Checked In"}`,
			setupMock: func(f webhookFixture) {
				f.sync.EXPECT().ApplyPatch(gomock.Any(), gomock.Any(), akia.ReservationPatch{Status: akia.StatusCheckedIn}).
					Return(service.SyncReport{Path: service.PathPatch}, nil)
			},
			wantPath: service.PathPatch,
			wantOut:  "success",
		},
		{
			name: "key delivered",
			body: `{"eventType":"RESERVATION_KEY_DELIVERED","keyStatus":"DELIVERED","confirmationId":"ABC123"}`,
			setupMock: func(f webhookFixture) {
				f.sync.EXPECT().TriggerEvent(gomock.Any(), gomock.Any(), akia.EventDigitalKeyDelivery).
					Return(service.SyncReport{Path: service.PathEvent}, nil)
			},
			wantPath: service.PathEvent,
			wantOut:  "success",
		},
		{
			name: "scheduled check on arrival day",
			body: `{"eventType":"SCHEDULED_CHECK","confirmationId":"ABC123","status":"Confirmed","stayInfo":{"arrivalDate":"2024-03-10","departureDate":"2024-03-12"}}`,
			setupMock: func(f webhookFixture) {
				f.sync.EXPECT().TriggerEvent(gomock.Any(), gomock.Any(), akia.EventArrivalWelcome).
					Return(service.SyncReport{Path: service.PathEvent}, nil)
			},
			wantPath: service.PathEvent,
			wantOut:  "success",
		},
		{
			name:      "key with unexpected status",
			body:      `{"eventType":"KEY_ISSUED","keyStatus":"PENDING","confirmationId":"ABC123"}`,
			setupMock: func(webhookFixture) {},
			wantPath:  service.PathNone,
			wantOut:   "skipped",
		},
		{
			name: "update with date change",
			body: `{"eventType":"RESERVATION_UPDATED","confirmationId":"ABC123","status":"Confirmed","stayInfo":{"arrivalDate":"2024-03-11","departureDate":"2024-03-12"},"previous":{"arrivalDate":"2024-03-10"}}`,
			setupMock: func(f webhookFixture) {
				f.sync.EXPECT().ApplyPatch(gomock.Any(), gomock.Any(), akia.ReservationPatch{ArrivalDate: "2024-03-11"}).
					Return(service.SyncReport{Path: service.PathPatch}, nil)
			},
			wantPath: service.PathPatch,
			wantOut:  "success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFixture(t)
			f.expectLock()
			tt.setupMock(f)

			result, err := f.webhook(service.WebhookOptions{}).HandleEvent(context.Background(), []byte(tt.body))

			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, result.Plan.Path)
			assert.Equal(t, tt.wantOut, result.Outcome)
		})
	}
}

func TestHandleEventSyncFailure(t *testing.T) {
	f := newWebhookFixture(t)
	f.expectLock()

	crmErr := errors.New("hubspot responded 502")
	f.sync.EXPECT().SyncReservation(gomock.Any(), gomock.Any()).Return(service.SyncReport{Path: service.PathUpsert}, crmErr)

	result, err := f.webhook(service.WebhookOptions{}).HandleEvent(context.Background(), []byte(`{"confirmationId":"ABC123","status":"Confirmed"}`))

	assert.ErrorIs(t, err, crmErr)
	assert.Equal(t, "failure", result.Outcome)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.WebhookEvents.WithLabelValues("inferred", "failure")))
}

func TestHandleEventLocking(t *testing.T) {
	tests := []struct {
		name      string
		lockWait  time.Duration
		setupMock func(f webhookFixture)
		wantErr   error
		wantOut   string
	}{
		{
			name: "held lock is busy",
			setupMock: func(f webhookFixture) {
				f.cache.EXPECT().Lock(gomock.Any(), "sync:lock:ABC123", time.Minute).Return("", cache.ErrLockNotAcquired)
			},
			wantErr: service.ErrSyncInProgress,
			wantOut: "busy",
		},
		{
			name:     "lock released within wait",
			lockWait: time.Second,
			setupMock: func(f webhookFixture) {
				gomock.InOrder(
					f.cache.EXPECT().Lock(gomock.Any(), "sync:lock:ABC123", time.Minute).Return("", cache.ErrLockNotAcquired).Times(2),
					f.cache.EXPECT().Lock(gomock.Any(), "sync:lock:ABC123", time.Minute).Return("owner-2", nil),
					f.cache.EXPECT().Unlock(gomock.Any(), "sync:lock:ABC123", "owner-2").Return(nil),
				)
				f.sync.EXPECT().SyncReservation(gomock.Any(), gomock.Any()).Return(service.SyncReport{Path: service.PathUpsert}, nil)
			},
			wantOut: "success",
		},
		{
			name: "redis unavailable runs unlocked",
			setupMock: func(f webhookFixture) {
				f.cache.EXPECT().Lock(gomock.Any(), "sync:lock:ABC123", time.Minute).Return("", errors.New("connection refused"))
				f.sync.EXPECT().SyncReservation(gomock.Any(), gomock.Any()).Return(service.SyncReport{Path: service.PathUpsert}, nil)
			},
			wantOut: "success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFixture(t)
			tt.setupMock(f)

			result, err := f.webhook(service.WebhookOptions{LockWait: tt.lockWait}).
				HandleEvent(context.Background(), []byte(`{"confirmationId":"ABC123","status":"Confirmed"}`))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantOut, result.Outcome)
		})
	}
}

func TestHandleEventArchiveFailureIsIgnored(t *testing.T) {
	f := newWebhookFixture(t)
	f.archive.enabled = true
	f.archive.err = errors.New("access denied")
	f.expectLock()
	f.sync.EXPECT().SyncReservation(gomock.Any(), gomock.Any()).Return(service.SyncReport{Path: service.PathUpsert}, nil)

	result, err := f.webhook(service.WebhookOptions{}).HandleEvent(context.Background(), []byte(`{"confirmationId":"ABC123"}`))

	require.NoError(t, err)
	assert.Empty(t, result.ArchiveKey)
	assert.Len(t, f.archive.bodies, 1)
}

func TestHandleEventWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	synchronizer := reservationMocks.NewMockSynchronizer(ctrl)
	synchronizer.EXPECT().HandleCancellation(gomock.Any(), gomock.Any()).Return(service.SyncReport{Path: service.PathCancel}, nil)

	webhook := service.NewWebhook(synchronizer, nil, nil, nil, mocks.NewOtel(), nil, service.WebhookOptions{})

	result, err := webhook.HandleEvent(context.Background(), []byte(`{"eventType":"RESERVATION_CANCELLED","confirmationId":"ABC123"}`))

	require.NoError(t, err)
	assert.Equal(t, "success", result.Outcome)
}

func TestHandleEventScheduledCheckFiresEveryDueEvent(t *testing.T) {
	body := []byte(`{"eventType":"SCHEDULED_CHECK","confirmationId":"ABC123","status":"Checked In","stayInfo":{"arrivalDate":"2024-03-10","departureDate":"2024-03-10"}}`)

	t.Run("both events sent", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.expectLock()

		gomock.InOrder(
			f.sync.EXPECT().TriggerEvent(gomock.Any(), gomock.Any(), akia.EventArrivalWelcome).
				Return(service.SyncReport{Path: service.PathEvent}, nil),
			f.sync.EXPECT().TriggerEvent(gomock.Any(), gomock.Any(), akia.EventDepartureMorning).
				Return(service.SyncReport{Path: service.PathEvent}, nil),
		)

		result, err := f.webhook(service.WebhookOptions{}).HandleEvent(context.Background(), body)

		require.NoError(t, err)
		assert.Equal(t, []string{akia.EventArrivalWelcome, akia.EventDepartureMorning}, result.Plan.EventNames)
		assert.Equal(t, "success", result.Outcome)
	})

	t.Run("a failed event does not stop the next", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.expectLock()

		welcomeErr := errors.New("akia responded 500")
		welcomeReport := service.SyncReport{Path: service.PathEvent, Messaging: service.StepResult{Service: "akia", Err: welcomeErr}}

		gomock.InOrder(
			f.sync.EXPECT().TriggerEvent(gomock.Any(), gomock.Any(), akia.EventArrivalWelcome).Return(welcomeReport, welcomeErr),
			f.sync.EXPECT().TriggerEvent(gomock.Any(), gomock.Any(), akia.EventDepartureMorning).
				Return(service.SyncReport{Path: service.PathEvent}, nil),
		)

		result, err := f.webhook(service.WebhookOptions{}).HandleEvent(context.Background(), body)

		assert.ErrorIs(t, err, welcomeErr)
		require.NotNil(t, result.Report)
		assert.ErrorIs(t, result.Report.Messaging.Err, welcomeErr)
		assert.Equal(t, "failure", result.Outcome)
	})
}
