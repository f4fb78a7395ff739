package model_test

import (
	"testing"

	"pmsbridge/internal/domains/reservation/model"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want model.Status
	}{
		{raw: "Reserved", want: model.StatusReserved},
		{raw: "CONFIRMED", want: model.StatusConfirmed},
		{raw: "Checked In", want: model.StatusCheckedIn},
		{raw: "CHECKED_IN", want: model.StatusCheckedIn},
		{raw: "In-House", want: model.StatusCheckedIn},
		{raw: "checked-out", want: model.StatusCheckedOut},
		{raw: "Canceled", want: model.StatusCancelled},
		{raw: "CANCELLED", want: model.StatusCancelled},
		{raw: "NoShow", want: model.StatusUnknown},
		{raw: "", want: model.StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ClassifyStatus(tt.raw))
		})
	}
}

func TestIsCancelledMatchesExactLiterals(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: "Canceled", want: true},
		{status: "CANCELLED", want: true},
		{status: "cancelled"},
		{status: "Cancelled"},
		{status: "CANCELED"},
		{status: "Confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Reservation{Status: tt.status}.IsCancelled())
		})
	}
}

func TestParseEventType(t *testing.T) {
	tests := []struct {
		raw  string
		want model.EventType
	}{
		{raw: "RESERVATION_CREATED", want: model.EventCreated},
		{raw: "CREATED", want: model.EventCreated},
		{raw: "RESERVATION_UPDATED", want: model.EventUpdated},
		{raw: "RESERVATION_CANCELLED", want: model.EventCancelled},
		{raw: "CHECK_IN", want: model.EventCheckIn},
		{raw: "RESERVATION_CHECK_OUT", want: model.EventCheckOut},
		{raw: "KEY_ISSUED", want: model.EventKeyIssued},
		{raw: "RESERVATION_KEY_DELIVERED", want: model.EventKeyDelivered},
		{raw: "SCHEDULED_CHECK", want: model.EventScheduledCheck},
		{raw: "created", want: model.EventNone},
		{raw: "ROOM_MOVE", want: model.EventNone},
		{raw: "", want: model.EventNone},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, model.ParseEventType(tt.raw))
		})
	}
}

func TestPreviousEmpty(t *testing.T) {
	var nilPrevious *model.Previous

	assert.True(t, nilPrevious.Empty())
	assert.True(t, (&model.Previous{}).Empty())
	assert.False(t, (&model.Previous{RoomType: "VILLA"}).Empty())
}
