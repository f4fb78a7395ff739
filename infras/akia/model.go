package akia

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	StatusReserved   = "reserved"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

const (
	EventDigitalKeyDelivery = "digital_key_delivery"
	EventPreArrivalCheckin  = "pre_arrival_checkin"
	EventArrivalWelcome     = "arrival_welcome"
	EventDepartureMorning   = "departure_morning"
	EventMidStayCheck       = "mid_stay_check"
)

// ID accepts both numeric and string identifiers from Akia.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}

	*id = ID(n.String())

	return nil
}

func (id ID) String() string {
	return string(id)
}

type Customer struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	ExternID    string `json:"extern_id,omitempty"`
	PropertyID  int    `json:"property_id,omitempty"`
}

type Reservation struct {
	CustomerID         ID     `json:"customer_id"`
	ArrivalDate        string `json:"arrival_date,omitempty"`
	DepartureDate      string `json:"departure_date,omitempty"`
	ExternID           string `json:"extern_id"`
	RoomType           string `json:"room_type,omitempty"`
	ConfirmationNumber string `json:"confirmation_number"`
	Status             string `json:"status"`
}

// ReservationPatch carries only the fields that changed.
type ReservationPatch struct {
	Status        string `json:"status,omitempty"`
	ArrivalDate   string `json:"arrival_date,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"`
	RoomType      string `json:"room_type,omitempty"`
}

func (p ReservationPatch) Empty() bool {
	return strings.TrimSpace(p.Status+p.ArrivalDate+p.DepartureDate+p.RoomType) == ""
}

type cancellation struct {
	ExternID string `json:"extern_id"`
	Status   string `json:"status"`
}

type integrationEvent struct {
	EventName string     `json:"event_name"`
	Guest     eventGuest `json:"guest"`
}

type eventGuest struct {
	ReservationID string `json:"reservation_id"`
}

type created struct {
	ID ID `json:"id"`
}
