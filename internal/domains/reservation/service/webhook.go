package service

//go:generate go run go.uber.org/mock/mockgen -source=./webhook.go -destination=../mocks/webhook_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pmsbridge/config"
	"pmsbridge/infras/agilysys"
	"pmsbridge/infras/metrics"
	"pmsbridge/infras/otel"
	"pmsbridge/infras/s3"
	"pmsbridge/internal/domains/reservation/model"
	"pmsbridge/internal/domains/reservation/model/dto"
	"pmsbridge/shared/cache"
	"pmsbridge/shared/constant"
	"pmsbridge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	defaultLockPoll = 100 * time.Millisecond

	otelAttrConfirmationNumber = "confirmation_number"
	otelAttrEventType          = "event_type"
)

var (
	ErrIdentifierNotFound = errors.New("no confirmation number in webhook payload")
	ErrFetchFailed        = errors.New("reservation details could not be fetched")
	ErrSyncInProgress     = errors.New("another delivery is syncing this reservation")
)

// Result describes how one delivery was handled. Every delivery is acknowledged regardless.
type Result struct {
	Outcome            string
	ConfirmationNumber string
	Event              model.EventType
	Plan               Plan
	Report             *SyncReport
	ArchiveKey         string
}

type Webhook interface {
	HandleEvent(ctx context.Context, body []byte) (Result, error)
}

type Clock func() time.Time

type WebhookOptions struct {
	FetchDetails bool
	FetchSpa     bool
	LockTTL      time.Duration
	LockWait     time.Duration
	LockPoll     time.Duration
	Now          Clock
}

type webhookImpl struct {
	sync     Synchronizer
	agilysys agilysys.Client
	cache    cache.RedisCache
	archive  s3.Archive
	otel     otel.Otel
	metrics  *metrics.Metrics
	opts     WebhookOptions
}

func New(synchronizer Synchronizer, agilysysClient agilysys.Client, redisCache cache.RedisCache, archive s3.Archive, cfg *config.Config, ot otel.Otel, m *metrics.Metrics) Webhook {
	return NewWebhook(synchronizer, agilysysClient, redisCache, archive, ot, m, WebhookOptions{
		FetchDetails: cfg.Sync.FetchDetails,
		FetchSpa:     cfg.Sync.FetchSpa,
		LockTTL:      time.Duration(cfg.Sync.LockTTLSeconds) * time.Second,
		LockWait:     time.Duration(cfg.Sync.LockWaitSeconds) * time.Second,
		Now:          timezone.Now,
	})
}

// NewWebhook builds the pipeline. A nil cache disables the per-reservation lock.
func NewWebhook(synchronizer Synchronizer, agilysysClient agilysys.Client, redisCache cache.RedisCache, archive s3.Archive, ot otel.Otel, m *metrics.Metrics, opts WebhookOptions) Webhook {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.LockPoll <= 0 {
		opts.LockPoll = defaultLockPoll
	}

	return &webhookImpl{
		sync:     synchronizer,
		agilysys: agilysysClient,
		cache:    redisCache,
		archive:  archive,
		otel:     ot,
		metrics:  m,
		opts:     opts,
	}
}

func (s *webhookImpl) HandleEvent(ctx context.Context, body []byte) (result Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleEvent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	started := time.Now()
	receivedAt := s.opts.Now()

	log.Debug().RawJSON("payload", jsonOrString(body)).Msg("webhook received")

	result.ArchiveKey = s.store(ctx, receivedAt, body)

	defer func() {
		s.metrics.ObserveEvent(result.Event.Label(), result.Outcome)

		if result.Plan.Path != "" {
			s.metrics.ObserveSync(string(result.Plan.Path), time.Since(started).Seconds())
		}
	}()

	envelope, err := dto.ParseEnvelope(body)
	if err != nil {
		log.Warn().Err(err).Msg("webhook skipped")

		result.Outcome = constant.OutcomeSkipped

		return result, err
	}

	event := envelope.Event
	result.Event = event.Type

	if event.Identifier == "" {
		log.Warn().Str("event_type", event.RawType).Msg("webhook skipped, no confirmation number")

		result.Outcome = constant.OutcomeSkipped

		return result, ErrIdentifierNotFound
	}

	result.ConfirmationNumber = event.Identifier
	scope.SetAttributes(map[string]any{
		otelAttrConfirmationNumber: event.Identifier,
		otelAttrEventType:          event.RawType,
	})

	release, err := s.acquire(ctx, event.Identifier)
	if err != nil {
		log.Warn().Err(err).Str("confirmation_number", event.Identifier).Msg("webhook skipped")

		result.Outcome = constant.OutcomeBusy

		return result, err
	}
	defer release()

	reservation, err := s.reservation(ctx, envelope)
	if err != nil {
		result.Outcome = constant.OutcomeSkipped

		return result, err
	}

	result.Plan = Decide(event, reservation, s.opts.Now())

	log.Info().
		Str("confirmation_number", reservation.ConfirmationNumber).
		Str("event_type", event.RawType).
		Str("status", reservation.Status).
		Str("path", string(result.Plan.Path)).
		Str("reason", result.Plan.Reason).
		Msg("webhook routed")

	report, err := s.dispatch(ctx, result.Plan, reservation)
	result.Report = report

	if err != nil {
		log.Error().Err(err).Str("confirmation_number", reservation.ConfirmationNumber).Msg("webhook sync failed")

		result.Outcome = constant.OutcomeFailure

		return result, err
	}

	if result.Plan.Path == PathNone {
		result.Outcome = constant.OutcomeSkipped
	} else {
		result.Outcome = constant.OutcomeSuccess
	}

	return result, nil
}

func (s *webhookImpl) dispatch(ctx context.Context, plan Plan, reservation model.Reservation) (*SyncReport, error) {
	var (
		report SyncReport
		err    error
	)

	switch plan.Path {
	case PathUpsert:
		report, err = s.sync.SyncReservation(ctx, reservation)
	case PathCancel:
		report, err = s.sync.HandleCancellation(ctx, reservation)
	case PathPatch:
		report, err = s.sync.ApplyPatch(ctx, reservation, plan.Patch)
	case PathEvent:
		report, err = s.triggerEvents(ctx, reservation, plan.EventNames)
	default:
		return nil, nil
	}

	return &report, err
}

// triggerEvents fires each event even when an earlier one fails and joins the failures.
func (s *webhookImpl) triggerEvents(ctx context.Context, reservation model.Reservation, names []string) (SyncReport, error) {
	var (
		report SyncReport
		errs   []error
	)

	for i, name := range names {
		next, err := s.sync.TriggerEvent(ctx, reservation, name)
		if err != nil {
			errs = append(errs, err)
		}

		if i == 0 {
			report = next

			continue
		}

		if next.Messaging.Err != nil {
			report.Messaging.Err = errors.Join(report.Messaging.Err, next.Messaging.Err)
		}
	}

	return report, errors.Join(errs...)
}

// reservation builds the canonical record from the detail API or the envelope.
func (s *webhookImpl) reservation(ctx context.Context, envelope dto.Envelope) (model.Reservation, error) {
	id := envelope.Event.Identifier

	var (
		record dto.AgilysysReservation
		err    error
	)

	if s.opts.FetchDetails {
		raw, fetchErr := s.agilysys.GetReservation(ctx, id)
		if fetchErr != nil || len(raw) == 0 {
			log.Error().Err(fetchErr).Str("confirmation_number", id).Msg("reservation detail fetch failed")

			return model.Reservation{}, errors.Join(ErrFetchFailed, fetchErr)
		}

		record, err = dto.ParseAgilysysReservation(raw)
	} else {
		record, err = envelope.InlineRecord()
	}

	if err != nil {
		log.Error().Err(err).Str("confirmation_number", id).Msg("reservation record is malformed")

		return model.Reservation{}, errors.Join(ErrFetchFailed, err)
	}

	if s.opts.FetchSpa {
		record.SpaItems = append(record.SpaItems, s.spa(ctx, id)...)
	}

	return record.ToModel(id), nil
}

func (s *webhookImpl) spa(ctx context.Context, id string) []dto.SpaAppointment {
	raw, err := s.agilysys.GetSpaAppointments(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("confirmation_number", id).Msg("spa appointments unavailable, syncing without them")

		return nil
	}

	appointments, err := dto.ParseSpaAppointments(raw)
	if err != nil {
		log.Warn().Err(err).Str("confirmation_number", id).Msg("spa appointments are malformed, syncing without them")

		return nil
	}

	return appointments
}

// acquire takes the per-reservation lock, polling until LockWait elapses.
func (s *webhookImpl) acquire(ctx context.Context, id string) (func(), error) {
	noop := func() {}

	if s.cache == nil {
		return noop, nil
	}

	key := constant.CacheKeySyncLockPrefix + id
	deadline := time.Now().Add(s.opts.LockWait)

	for {
		owner, err := s.cache.Lock(ctx, key, s.opts.LockTTL)
		if err == nil {
			return func() {
				if unlockErr := s.cache.Unlock(context.WithoutCancel(ctx), key, owner); unlockErr != nil {
					log.Warn().Err(unlockErr).Str("key", key).Msg("failed to release sync lock")
				}
			}, nil
		}

		if !errors.Is(err, cache.ErrLockNotAcquired) {
			log.Warn().Err(err).Str("key", key).Msg("sync lock unavailable, continuing unlocked")

			return noop, nil
		}

		if !time.Now().Before(deadline) {
			return nil, fmt.Errorf("%w: %s", ErrSyncInProgress, id)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.opts.LockPoll):
		}
	}
}

func (s *webhookImpl) store(ctx context.Context, receivedAt time.Time, body []byte) string {
	if s.archive == nil || !s.archive.Enabled() {
		return constant.Empty
	}

	key, err := s.archive.StorePayload(ctx, receivedAt, body)
	if err != nil {
		log.Warn().Err(err).Msg("failed to archive webhook payload")

		return constant.Empty
	}

	return key
}

func jsonOrString(body []byte) []byte {
	if json.Valid(body) {
		return body
	}

	return []byte(fmt.Sprintf("%q", string(body)))
}
