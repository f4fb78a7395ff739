package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"pmsbridge/internal/domains/reservation/model"
	"pmsbridge/shared"
)

const (
	PlaceholderFirstName = "Test"
	PlaceholderLastName  = "Guest"

	// primaryMarker is compared as text; vendors send the flag as the string "true".
	primaryMarker = "true"
)

// AgilysysReservation is the booking record as returned by the reservation API or embedded in a webhook.
type AgilysysReservation struct {
	ConfirmationID     FlexString `json:"confirmationId"`
	ConfirmationNumber FlexString `json:"confirmationNumber"`
	ReservationID      FlexString `json:"reservationID"`
	Status             string     `json:"status"`
	CreateDate         string     `json:"createDate"`
	Origin             string     `json:"origin"`
	Segment            string     `json:"marketSegment"`
	GuestType          string     `json:"guestType"`

	GuestInfo OneOrMany[AgilysysGuest] `json:"guestInfo"`
	Guests    OneOrMany[AgilysysGuest] `json:"guests"`
	Offers    OneOrMany[AgilysysOffer] `json:"offers"`
	StayInfo  AgilysysStay             `json:"stayInfo"`

	AddOnItems []AgilysysAddOn  `json:"addOnItems"`
	SpaItems   []SpaAppointment `json:"spaItems"`
}

type AgilysysGuest struct {
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	EmailAddress string     `json:"emailAddress"`
	Email        string     `json:"email"`
	CellNumber   FlexString `json:"CellNumber"`
	MobileNumber FlexString `json:"mobileNumber"`
	PhoneNumber  FlexString `json:"PhoneNumber"`
	GuestProfID  FlexString `json:"guestProfID"`
	Primary      FlexString `json:"primary"`
	IsPrimary    FlexString `json:"isPrimary"`
}

type AgilysysOffer struct {
	RoomType   string     `json:"roomType"`
	RoomNum    FlexString `json:"roomNum"`
	RoomNumber FlexString `json:"roomNumber"`
}

type AgilysysStay struct {
	ArrivalDate   string `json:"arrivalDate"`
	DepartureDate string `json:"departureDate"`
	GuestCounts   struct {
		Adults   FlexString `json:"adults"`
		Children FlexString `json:"children"`
	} `json:"guestCounts"`
}

type AgilysysAddOn struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         FlexString `json:"price"`
	TaxAmount     FlexString `json:"taxAmount"`
	PostType      string     `json:"postType"`
	DepositPolicy string     `json:"depositPolicy"`
}

type SpaAppointment struct {
	ActivityDetail struct {
		ConfirmationNumber FlexString `json:"confirmationNumber"`
		ActivityName       string     `json:"activityName"`
		StartDateTime      string     `json:"startDateTime"`
		EndDateTime        string     `json:"endDateTime"`
	} `json:"activityDetail"`
	Price          FlexString `json:"price"`
	GratuityAmount FlexString `json:"gratuityAmount"`
	TaxAmount      FlexString `json:"taxAmount"`
	TherapistID    FlexString `json:"therapistId"`
}

func ParseAgilysysReservation(raw []byte) (AgilysysReservation, error) {
	var record AgilysysReservation
	if err := json.Unmarshal(raw, &record); err != nil {
		return record, fmt.Errorf("failed to decode agilysys reservation: %w", err)
	}

	return record, nil
}

// ParseSpaAppointments accepts a bare array or an object wrapping one.
func ParseSpaAppointments(raw []byte) ([]SpaAppointment, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '[' {
		var items []SpaAppointment
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("failed to decode spa appointments: %w", err)
		}

		return items, nil
	}

	var wrapped struct {
		Appointments []SpaAppointment `json:"appointments"`
		SpaItems     []SpaAppointment `json:"spaItems"`
		Results      []SpaAppointment `json:"results"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode spa appointments: %w", err)
	}

	switch {
	case len(wrapped.Appointments) > 0:
		return wrapped.Appointments, nil
	case len(wrapped.SpaItems) > 0:
		return wrapped.SpaItems, nil
	default:
		return wrapped.Results, nil
	}
}

// ToModel normalizes the record. fallbackID is used when the record carries no confirmation number.
func (r AgilysysReservation) ToModel(fallbackID string) model.Reservation {
	guest := r.primaryGuest()

	reservation := model.Reservation{
		ConfirmationNumber: shared.FirstNonEmpty(r.ConfirmationID.String(), r.ConfirmationNumber.String(), fallbackID),
		ReservationID:      r.ReservationID.String(),
		Status:             r.Status,
		Guest: model.Guest{
			FirstName:         guest.FirstName,
			LastName:          guest.LastName,
			Email:             shared.FirstNonEmpty(guest.EmailAddress, guest.Email),
			Phone:             shared.FirstNonEmpty(guest.CellNumber.String(), guest.MobileNumber.String(), guest.PhoneNumber.String()),
			ExternalProfileID: guest.GuestProfID.String(),
		},
		Stay: model.Stay{
			ArrivalDate:   r.StayInfo.ArrivalDate,
			DepartureDate: r.StayInfo.DepartureDate,
			Adults:        r.StayInfo.GuestCounts.Adults.Int(1),
			Children:      r.StayInfo.GuestCounts.Children.Int(0),
		},
		CreateDate: r.CreateDate,
		OriginCode: r.Origin,
		Segment:    r.Segment,
		GuestType:  r.GuestType,
	}

	if reservation.Stay.Adults < 1 {
		reservation.Stay.Adults = 1
	}

	if reservation.Stay.Children < 0 {
		reservation.Stay.Children = 0
	}

	if len(r.Offers) > 0 {
		offer := r.Offers[0]
		reservation.Stay.RoomType = offer.RoomType
		reservation.Stay.RoomNumber = shared.FirstNonEmpty(offer.RoomNum.String(), offer.RoomNumber.String())
	}

	for _, addOn := range r.AddOnItems {
		reservation.AddOnItems = append(reservation.AddOnItems, model.AddOnItem{
			Name:          shared.FirstNonEmpty(addOn.Name, addOn.Description),
			Price:         addOn.Price.String(),
			TaxAmount:     addOn.TaxAmount.String(),
			PostType:      addOn.PostType,
			DepositPolicy: addOn.DepositPolicy,
		})
	}

	reservation.SpaItems = SpaItems(r.SpaItems)

	return reservation
}

func SpaItems(appointments []SpaAppointment) []model.SpaItem {
	var items []model.SpaItem

	for _, appointment := range appointments {
		items = append(items, model.SpaItem{
			ConfirmationNumber: appointment.ActivityDetail.ConfirmationNumber.String(),
			ActivityName:       appointment.ActivityDetail.ActivityName,
			StartDateTime:      appointment.ActivityDetail.StartDateTime,
			EndDateTime:        appointment.ActivityDetail.EndDateTime,
			Price:              appointment.Price.String(),
			GratuityAmount:     appointment.GratuityAmount.String(),
			TaxAmount:          appointment.TaxAmount.String(),
			TherapistID:        appointment.TherapistID.String(),
		})
	}

	return items
}

func (r AgilysysReservation) primaryGuest() AgilysysGuest {
	guests := r.Guests
	if len(guests) == 0 {
		guests = r.GuestInfo
	}

	if len(guests) == 0 {
		return AgilysysGuest{FirstName: PlaceholderFirstName, LastName: PlaceholderLastName}
	}

	for _, guest := range guests {
		if guest.Primary.String() == primaryMarker || guest.IsPrimary.String() == primaryMarker {
			return guest
		}
	}

	return guests[0]
}
