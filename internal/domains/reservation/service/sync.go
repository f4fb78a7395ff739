package service

//go:generate go run go.uber.org/mock/mockgen -source=./sync.go -destination=../mocks/sync_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"pmsbridge/config"
	"pmsbridge/infras/akia"
	"pmsbridge/infras/hubspot"
	"pmsbridge/infras/otel"
	"pmsbridge/infras/remote"
	"pmsbridge/internal/domains/reservation/model"
	"pmsbridge/shared/constant"

	"github.com/rs/zerolog/log"
)

type Path string

const (
	PathUpsert Path = "upsert"
	PathCancel Path = "cancel"
	PathPatch  Path = "patch"
	PathEvent  Path = "event"
	PathNone   Path = "none"
)

var ErrDealNotFound = errors.New("no deal matches the confirmation number")

// FailurePolicy decides which downstream failures fail the whole path.
type FailurePolicy struct {
	MessagingFatal bool
	CRMFatal       bool
}

func DefaultPolicies(cfg *config.Config) map[Path]FailurePolicy {
	return map[Path]FailurePolicy{
		PathUpsert: {MessagingFatal: cfg.Sync.MessagingIsFatal, CRMFatal: true},
		PathPatch:  {MessagingFatal: cfg.Sync.MessagingIsFatal, CRMFatal: true},
		PathCancel: {},
		PathEvent:  {},
	}
}

// StepResult is the outcome of one downstream system within a sync.
type StepResult struct {
	Service string
	Skipped bool
	Err     error
}

func (r StepResult) Outcome() string {
	switch {
	case r.Err != nil:
		return constant.OutcomeFailure
	case r.Skipped:
		return constant.OutcomeSkipped
	default:
		return constant.OutcomeSuccess
	}
}

type SyncReport struct {
	Path               Path
	ConfirmationNumber string
	Messaging          StepResult
	CRM                StepResult
	DealID             string
	DealCreated        bool
	LineItems          int
	LineItemFailures   int
}

// Err joins the step failures the policy marks fatal.
func (r SyncReport) Err(policy FailurePolicy) error {
	var errs []error

	if policy.MessagingFatal && r.Messaging.Err != nil {
		errs = append(errs, r.Messaging.Err)
	}

	if policy.CRMFatal && r.CRM.Err != nil {
		errs = append(errs, r.CRM.Err)
	}

	return errors.Join(errs...)
}

// Synchronizer fans a canonical reservation out to messaging and CRM.
type Synchronizer interface {
	SyncReservation(ctx context.Context, reservation model.Reservation) (SyncReport, error)
	HandleCancellation(ctx context.Context, reservation model.Reservation) (SyncReport, error)
	// ApplyPatch sends a field-scoped messaging patch and upserts the CRM deal.
	ApplyPatch(ctx context.Context, reservation model.Reservation, patch akia.ReservationPatch) (SyncReport, error)
	TriggerEvent(ctx context.Context, reservation model.Reservation, eventName string) (SyncReport, error)
}

type syncImpl struct {
	akia     akia.Client
	hubspot  hubspot.Client
	otel     otel.Otel
	fields   CRMFields
	rep      SalesRep
	policies map[Path]FailurePolicy
}

func NewSynchronizer(akiaClient akia.Client, hubspotClient hubspot.Client, cfg *config.Config, ot otel.Otel) Synchronizer {
	return NewSynchronizerWithPolicies(akiaClient, hubspotClient, cfg, ot, DefaultPolicies(cfg))
}

func NewSynchronizerWithPolicies(akiaClient akia.Client, hubspotClient hubspot.Client, cfg *config.Config, ot otel.Otel, policies map[Path]FailurePolicy) Synchronizer {
	return &syncImpl{
		akia:    akiaClient,
		hubspot: hubspotClient,
		otel:    ot,
		fields: CRMFields{
			Pipeline:               cfg.HubSpot.Pipeline,
			InitialStage:           cfg.HubSpot.InitialStage,
			CancelledStage:         cfg.HubSpot.CancelledStage,
			PropConfirmationNumber: cfg.HubSpot.PropConfirmationNumber,
			PropAkiaURL:            cfg.HubSpot.PropAkiaURL,
		},
		rep:      SalesRep{HubSpotID: cfg.HubSpot.SalesRepID, AgilysysID: cfg.Agilysys.SalesRepID},
		policies: policies,
	}
}

func (s *syncImpl) SyncReservation(ctx context.Context, reservation model.Reservation) (report SyncReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report = s.newReport(PathUpsert, reservation)

	var akiaURL string
	akiaURL, report.Messaging = s.upsertMessaging(ctx, reservation)

	s.upsertDeal(ctx, reservation, akiaURL, &report)

	return report, s.finish(report)
}

func (s *syncImpl) ApplyPatch(ctx context.Context, reservation model.Reservation, patch akia.ReservationPatch) (report SyncReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ApplyPatch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report = s.newReport(PathPatch, reservation)

	var akiaURL string

	if patch.Empty() {
		report.Messaging.Skipped = true
	} else if patchErr := s.akia.PatchReservation(ctx, reservation.ConfirmationNumber, patch); remote.IsNotFound(patchErr) {
		log.Warn().Str("confirmation_number", reservation.ConfirmationNumber).Msg("akia reservation not found for patch, upserting instead")

		akiaURL, report.Messaging = s.upsertMessaging(ctx, reservation)
	} else if patchErr != nil {
		log.Error().Err(patchErr).Str("confirmation_number", reservation.ConfirmationNumber).Msg("akia reservation patch failed")

		report.Messaging.Err = patchErr
	}

	s.upsertDeal(ctx, reservation, akiaURL, &report)

	return report, s.finish(report)
}

func (s *syncImpl) HandleCancellation(ctx context.Context, reservation model.Reservation) (report SyncReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleCancellation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report = s.newReport(PathCancel, reservation)

	if cancelErr := s.akia.CancelReservation(ctx, reservation.ConfirmationNumber); cancelErr != nil {
		log.Error().Err(cancelErr).Str("confirmation_number", reservation.ConfirmationNumber).Msg("akia cancellation failed")

		report.Messaging.Err = cancelErr
	}

	dealID, searchErr := s.hubspot.SearchDeal(ctx, s.fields.PropConfirmationNumber, reservation.ConfirmationNumber)

	switch {
	case searchErr != nil:
		log.Error().Err(searchErr).Str("confirmation_number", reservation.ConfirmationNumber).Msg("deal search failed, cancellation not recorded in crm")

		report.CRM.Err = searchErr
	case dealID == "":
		log.Warn().Str("confirmation_number", reservation.ConfirmationNumber).Msg("no deal to close")

		report.CRM.Skipped = true
	default:
		report.DealID = dealID

		if updateErr := s.hubspot.UpdateDeal(ctx, dealID, hubspot.Properties{dealPropertyStage: s.fields.CancelledStage}); updateErr != nil {
			log.Error().Err(updateErr).Str("deal_id", dealID).Msg("failed to move deal to cancelled stage")

			report.CRM.Err = updateErr
		} else {
			log.Info().Str("deal_id", dealID).Str("stage", s.fields.CancelledStage).Msg("deal moved to cancelled stage")
		}
	}

	return report, s.finish(report)
}

func (s *syncImpl) TriggerEvent(ctx context.Context, reservation model.Reservation, eventName string) (report SyncReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TriggerEvent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	report = s.newReport(PathEvent, reservation)
	report.CRM.Skipped = true

	if eventErr := s.akia.TriggerEvent(ctx, eventName, reservation.ConfirmationNumber); eventErr != nil {
		log.Error().Err(eventErr).Str("event", eventName).Str("confirmation_number", reservation.ConfirmationNumber).Msg("akia integration event failed")

		report.Messaging.Err = eventErr
	}

	return report, s.finish(report)
}

func (s *syncImpl) newReport(path Path, reservation model.Reservation) SyncReport {
	return SyncReport{
		Path:               path,
		ConfirmationNumber: reservation.ConfirmationNumber,
		Messaging:          StepResult{Service: constant.ServiceAkia},
		CRM:                StepResult{Service: constant.ServiceHubSpot},
	}
}

func (s *syncImpl) finish(report SyncReport) error {
	err := report.Err(s.policies[report.Path])

	log.Info().
		Str("path", string(report.Path)).
		Str("confirmation_number", report.ConfirmationNumber).
		Str("messaging", report.Messaging.Outcome()).
		Str("crm", report.CRM.Outcome()).
		Int("line_items", report.LineItems).
		Int("line_item_failures", report.LineItemFailures).
		Msg("sync finished")

	if err != nil {
		return fmt.Errorf("failed to %s reservation %s: %w", report.Path, report.ConfirmationNumber, err)
	}

	return nil
}

// upsertMessaging returns the conversation URL of the matched customer.
func (s *syncImpl) upsertMessaging(ctx context.Context, reservation model.Reservation) (string, StepResult) {
	result := StepResult{Service: constant.ServiceAkia}

	customerID, err := s.akia.UpsertCustomer(ctx, akia.Customer{
		FirstName:   reservation.Guest.FirstName,
		LastName:    reservation.Guest.LastName,
		Email:       reservation.Guest.Email,
		PhoneNumber: reservation.Guest.Phone,
		ExternID:    reservation.Guest.ExternalProfileID,
	})
	if err != nil {
		log.Error().Err(err).Str("confirmation_number", reservation.ConfirmationNumber).Msg("akia customer upsert failed")

		result.Err = err

		return constant.Empty, result
	}

	_, err = s.akia.UpsertReservation(ctx, akia.Reservation{
		CustomerID:         customerID,
		ArrivalDate:        reservation.Stay.ArrivalDate,
		DepartureDate:      reservation.Stay.DepartureDate,
		ExternID:           reservation.ConfirmationNumber,
		RoomType:           reservation.Stay.RoomType,
		ConfirmationNumber: reservation.ConfirmationNumber,
		Status:             AkiaStatus(reservation.StatusClass()),
	})
	if err != nil {
		log.Error().Err(err).Str("confirmation_number", reservation.ConfirmationNumber).Msg("akia reservation upsert failed")

		result.Err = err

		return constant.Empty, result
	}

	return s.akia.ConversationURL(customerID), result
}

func (s *syncImpl) upsertDeal(ctx context.Context, reservation model.Reservation, akiaURL string, report *SyncReport) {
	items := GenerateLineItems(reservation, s.rep)
	properties := dealProperties(reservation, s.fields, akiaURL)

	dealID, err := s.hubspot.SearchDeal(ctx, s.fields.PropConfirmationNumber, reservation.ConfirmationNumber)
	if err != nil {
		log.Error().Err(err).Str("confirmation_number", reservation.ConfirmationNumber).Msg("deal search failed")

		report.CRM.Err = err

		return
	}

	if dealID != "" {
		if err = s.hubspot.UpdateDeal(ctx, dealID, properties); err != nil {
			report.CRM.Err = err

			return
		}

		if err = s.purgeLineItems(ctx, dealID); err != nil {
			report.CRM.Err = err

			return
		}
	} else {
		properties[dealPropertyPipeline] = s.fields.Pipeline
		properties[dealPropertyStage] = s.fields.InitialStage

		if dealID, err = s.hubspot.CreateDeal(ctx, properties); err != nil {
			report.CRM.Err = err

			return
		}

		report.DealCreated = true
	}

	report.DealID = dealID

	for _, item := range items {
		if _, err = s.hubspot.CreateLineItem(ctx, dealID, lineItemProperties(item)); err != nil {
			log.Error().Err(err).Str("deal_id", dealID).Str("line_item", item.Name).Msg("failed to create line item")

			report.LineItemFailures++

			continue
		}

		report.LineItems++
	}
}

func (s *syncImpl) purgeLineItems(ctx context.Context, dealID string) error {
	ids, err := s.hubspot.ListLineItemIDs(ctx, dealID)
	if err != nil {
		return err
	}

	if err = s.hubspot.ArchiveLineItems(ctx, ids); err != nil {
		return err
	}

	if len(ids) > 0 {
		log.Debug().Str("deal_id", dealID).Int("count", len(ids)).Msg("archived previous line items")
	}

	return nil
}

// AkiaStatus maps the canonical status to the messaging vocabulary. Unknown statuses sync as confirmed.
func AkiaStatus(status model.Status) string {
	switch status {
	case model.StatusReserved:
		return akia.StatusReserved
	case model.StatusCheckedIn:
		return akia.StatusCheckedIn
	case model.StatusCheckedOut:
		return akia.StatusCheckedOut
	case model.StatusCancelled:
		return akia.StatusCancelled
	default:
		return akia.StatusConfirmed
	}
}
