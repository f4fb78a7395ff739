package service

import (
	"strings"
	"time"

	"pmsbridge/infras/akia"
	"pmsbridge/internal/domains/reservation/model"
	"pmsbridge/shared"
	"pmsbridge/shared/timezone"
)

var keyStatuses = map[string]struct{}{
	"ISSUED":    {},
	"DELIVERED": {},
}

// Plan is the action chosen for one delivery.
type Plan struct {
	Path  Path
	Patch akia.ReservationPatch
	// EventNames are the messaging integration events for PathEvent, fired in order.
	EventNames []string
	Reason     string
}

// Decide applies event-type precedence, falling back to the vendor status.
func Decide(event model.Event, reservation model.Reservation, now time.Time) Plan {
	switch event.Type {
	case model.EventCreated:
		return Plan{Path: PathUpsert, Reason: "created"}
	case model.EventUpdated:
		return planUpdate(reservation, event.Previous)
	case model.EventCancelled:
		return Plan{Path: PathCancel, Reason: "cancelled"}
	case model.EventCheckIn:
		return Plan{Path: PathPatch, Patch: akia.ReservationPatch{Status: akia.StatusCheckedIn}, Reason: "check in"}
	case model.EventCheckOut:
		return Plan{Path: PathPatch, Patch: akia.ReservationPatch{Status: akia.StatusCheckedOut}, Reason: "check out"}
	case model.EventKeyIssued, model.EventKeyDelivered:
		if event.KeyStatus != "" {
			if _, ok := keyStatuses[strings.ToUpper(event.KeyStatus)]; !ok {
				return Plan{Path: PathNone, Reason: "key status " + event.KeyStatus}
			}
		}

		return Plan{Path: PathEvent, EventNames: []string{akia.EventDigitalKeyDelivery}, Reason: "key"}
	case model.EventScheduledCheck:
		names := ScheduledEvents(reservation, now)
		if len(names) == 0 {
			return Plan{Path: PathNone, Reason: "nothing scheduled"}
		}

		return Plan{Path: PathEvent, EventNames: names, Reason: "scheduled"}
	}

	if reservation.IsCancelled() {
		return Plan{Path: PathCancel, Reason: "status " + reservation.Status}
	}

	return Plan{Path: PathUpsert, Reason: "status"}
}

func planUpdate(reservation model.Reservation, previous *model.Previous) Plan {
	if previous.Empty() {
		return Plan{Path: PathUpsert, Reason: "updated"}
	}

	current := reservation.StatusClass()
	before := model.ClassifyStatus(previous.Status)

	if previous.Status != "" && current != before {
		switch {
		case current == model.StatusCancelled:
			return Plan{Path: PathCancel, Reason: "transition to cancelled"}
		case current == model.StatusCheckedIn || current == model.StatusCheckedOut:
			return Plan{Path: PathPatch, Patch: akia.ReservationPatch{Status: AkiaStatus(current)}, Reason: "status transition"}
		}
	}

	var patch akia.ReservationPatch

	if changed(previous.ArrivalDate, reservation.Stay.ArrivalDate) {
		patch.ArrivalDate = reservation.Stay.ArrivalDate
	}

	if changed(previous.DepartureDate, reservation.Stay.DepartureDate) {
		patch.DepartureDate = reservation.Stay.DepartureDate
	}

	if changed(previous.RoomType, reservation.Stay.RoomType) {
		patch.RoomType = reservation.Stay.RoomType
	}

	if !patch.Empty() {
		return Plan{Path: PathPatch, Patch: patch, Reason: "stay change"}
	}

	return Plan{Path: PathUpsert, Reason: "updated"}
}

func changed(before, after string) bool {
	return before != "" && after != "" && before != after
}

// ScheduledEvents lists every time-based messaging event due for the reservation on the calendar
// day of now. Windows are checked independently, so a same-day stay can get both the arrival and
// the departure message.
func ScheduledEvents(reservation model.Reservation, now time.Time) []string {
	if reservation.IsCancelled() || reservation.StatusClass() == model.StatusCancelled {
		return nil
	}

	arrival, ok := shared.ParseDate(reservation.Stay.ArrivalDate)
	if !ok {
		return nil
	}

	departure, departureOK := shared.ParseDate(reservation.Stay.DepartureDate)
	today := timezone.CalendarDate(now)
	checkedIn := reservation.StatusClass() == model.StatusCheckedIn

	var events []string

	if arrival.Equal(today.AddDate(0, 0, 1)) {
		events = append(events, akia.EventPreArrivalCheckin)
	}

	if arrival.Equal(today) {
		events = append(events, akia.EventArrivalWelcome)
	}

	if checkedIn && departureOK && departure.Equal(today) {
		events = append(events, akia.EventDepartureMorning)
	}

	if checkedIn && departureOK && arrival.Before(today) && today.Before(departure) {
		events = append(events, akia.EventMidStayCheck)
	}

	return events
}
