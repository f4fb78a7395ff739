package service_test

import (
	"testing"
	"time"

	"pmsbridge/infras/akia"
	"pmsbridge/internal/domains/reservation/model"
	"pmsbridge/internal/domains/reservation/service"

	"github.com/stretchr/testify/assert"
)

var today = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func stay(status, arrival, departure string) model.Reservation {
	return model.Reservation{
		ConfirmationNumber: "ABC123",
		Status:             status,
		Stay:               model.Stay{ArrivalDate: arrival, DepartureDate: departure, RoomType: "VILLA"},
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name        string
		event       model.Event
		reservation model.Reservation
		wantPath    service.Path
		wantPatch   akia.ReservationPatch
		wantEvents  []string
	}{
		{name: "created", event: model.Event{Type: model.EventCreated}, reservation: stay("Canceled", "", ""), wantPath: service.PathUpsert},
		{name: "cancelled", event: model.Event{Type: model.EventCancelled}, reservation: stay("Confirmed", "", ""), wantPath: service.PathCancel},
		{name: "check in", event: model.Event{Type: model.EventCheckIn}, wantPath: service.PathPatch, wantPatch: akia.ReservationPatch{Status: akia.StatusCheckedIn}},
		{name: "check out", event: model.Event{Type: model.EventCheckOut}, wantPath: service.PathPatch, wantPatch: akia.ReservationPatch{Status: akia.StatusCheckedOut}},
		{name: "key issued", event: model.Event{Type: model.EventKeyIssued}, wantPath: service.PathEvent, wantEvents: []string{akia.EventDigitalKeyDelivery}},
		{name: "key delivered with status", event: model.Event{Type: model.EventKeyDelivered, KeyStatus: "delivered"}, wantPath: service.PathEvent, wantEvents: []string{akia.EventDigitalKeyDelivery}},
		{name: "key with other status", event: model.Event{Type: model.EventKeyIssued, KeyStatus: "REVOKED"}, wantPath: service.PathNone},
		{name: "scheduled arrival", event: model.Event{Type: model.EventScheduledCheck}, reservation: stay("Confirmed", "2024-03-10", "2024-03-12"), wantPath: service.PathEvent, wantEvents: []string{akia.EventArrivalWelcome}},
		{name: "scheduled nothing due", event: model.Event{Type: model.EventScheduledCheck}, reservation: stay("Confirmed", "2024-04-10", "2024-04-12"), wantPath: service.PathNone},
		{name: "inferred cancel single l", reservation: stay("Canceled", "", ""), wantPath: service.PathCancel},
		{name: "inferred cancel upper", reservation: stay("CANCELLED", "", ""), wantPath: service.PathCancel},
		{name: "inferred other spelling updates", reservation: stay("Cancelled", "", ""), wantPath: service.PathUpsert},
		{name: "inferred anything else updates", reservation: stay("Confirmed", "", ""), wantPath: service.PathUpsert},
		{name: "updated without previous", event: model.Event{Type: model.EventUpdated}, reservation: stay("Confirmed", "2024-03-01", "2024-03-04"), wantPath: service.PathUpsert},
		{
			name:        "updated to checked in",
			event:       model.Event{Type: model.EventUpdated, Previous: &model.Previous{Status: "Confirmed"}},
			reservation: stay("Checked In", "2024-03-01", "2024-03-04"),
			wantPath:    service.PathPatch,
			wantPatch:   akia.ReservationPatch{Status: akia.StatusCheckedIn},
		},
		{
			name:        "updated to checked out",
			event:       model.Event{Type: model.EventUpdated, Previous: &model.Previous{Status: "CheckedIn"}},
			reservation: stay("Checked Out", "2024-03-01", "2024-03-04"),
			wantPath:    service.PathPatch,
			wantPatch:   akia.ReservationPatch{Status: akia.StatusCheckedOut},
		},
		{
			name:        "updated to cancelled",
			event:       model.Event{Type: model.EventUpdated, Previous: &model.Previous{Status: "Confirmed"}},
			reservation: stay("Cancelled", "2024-03-01", "2024-03-04"),
			wantPath:    service.PathCancel,
		},
		{
			name:        "date change",
			event:       model.Event{Type: model.EventUpdated, Previous: &model.Previous{ArrivalDate: "2024-02-28", DepartureDate: "2024-03-04"}},
			reservation: stay("Confirmed", "2024-03-01", "2024-03-04"),
			wantPath:    service.PathPatch,
			wantPatch:   akia.ReservationPatch{ArrivalDate: "2024-03-01"},
		},
		{
			name:        "room change",
			event:       model.Event{Type: model.EventUpdated, Previous: &model.Previous{Status: "Confirmed", RoomType: "SUITE"}},
			reservation: stay("Confirmed", "2024-03-01", "2024-03-04"),
			wantPath:    service.PathPatch,
			wantPatch:   akia.ReservationPatch{RoomType: "VILLA"},
		},
		{
			name:        "previous identical",
			event:       model.Event{Type: model.EventUpdated, Previous: &model.Previous{Status: "Confirmed", ArrivalDate: "2024-03-01"}},
			reservation: stay("Confirmed", "2024-03-01", "2024-03-04"),
			wantPath:    service.PathUpsert,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := service.Decide(tt.event, tt.reservation, today)

			assert.Equal(t, tt.wantPath, plan.Path)
			assert.Equal(t, tt.wantPatch, plan.Patch)
			assert.Equal(t, tt.wantEvents, plan.EventNames)
		})
	}
}

func TestScheduledEvents(t *testing.T) {
	tests := []struct {
		name        string
		reservation model.Reservation
		want        []string
	}{
		{name: "arrival tomorrow", reservation: stay("Confirmed", "2024-03-11", "2024-03-14"), want: []string{akia.EventPreArrivalCheckin}},
		{name: "arrival today", reservation: stay("Confirmed", "2024-03-10", "2024-03-14"), want: []string{akia.EventArrivalWelcome}},
		{name: "departure today checked in", reservation: stay("Checked In", "2024-03-07", "2024-03-10"), want: []string{akia.EventDepartureMorning}},
		{name: "departure today not checked in", reservation: stay("Confirmed", "2024-03-07", "2024-03-10")},
		{name: "mid stay checked in", reservation: stay("In House", "2024-03-08", "2024-03-12"), want: []string{akia.EventMidStayCheck}},
		{name: "mid stay not checked in", reservation: stay("Confirmed", "2024-03-08", "2024-03-12")},
		{
			name:        "day use checked in gets arrival and departure",
			reservation: stay("Checked In", "2024-03-10", "2024-03-10"),
			want:        []string{akia.EventArrivalWelcome, akia.EventDepartureMorning},
		},
		{name: "day use not checked in gets arrival only", reservation: stay("Confirmed", "2024-03-10", "2024-03-10"), want: []string{akia.EventArrivalWelcome}},
		{name: "cancelled", reservation: stay("Canceled", "2024-03-10", "2024-03-12")},
		{name: "cancelled other spelling", reservation: stay("cancelled", "2024-03-11", "2024-03-12")},
		{name: "no dates", reservation: stay("Confirmed", "", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.ScheduledEvents(tt.reservation, today))
		})
	}
}
