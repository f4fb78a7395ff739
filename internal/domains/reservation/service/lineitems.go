package service

import (
	"fmt"
	"math"
	"time"

	"pmsbridge/internal/domains/reservation/model"
	"pmsbridge/shared"
	"pmsbridge/shared/constant"
)

const (
	defaultAddOnName = "Add-on"
	defaultSpaName   = "Spa Appointment"
)

// SalesRep identifies the representative stamped on every line item.
type SalesRep struct {
	HubSpotID  string
	AgilysysID string
}

// NightCount is ceil(|departure - arrival| / 24h), never less than one.
func NightCount(arrival, departure time.Time) int {
	span := departure.Sub(arrival)
	if span < 0 {
		span = -span
	}

	nights := int(math.Ceil(span.Hours() / 24))
	if nights < 1 {
		return 1
	}

	return nights
}

// GenerateLineItems returns the nights in date order, then add-ons, then spa items.
func GenerateLineItems(reservation model.Reservation, rep SalesRep) []model.LineItem {
	items := nightItems(reservation, rep)

	for _, addOn := range reservation.AddOnItems {
		items = append(items, model.LineItem{
			ConfirmationNumber: reservation.ConfirmationNumber,
			Name:               shared.FirstNonEmpty(addOn.Name, defaultAddOnName),
			ItemType:           model.ItemTypeAddOn,
			Price:              addOn.Price,
			TaxAmount:          addOn.TaxAmount,
			Metadata: model.LineItemMetadata{
				PostType:      addOn.PostType,
				DepositPolicy: addOn.DepositPolicy,
				SalesRepHsID:  rep.HubSpotID,
				SalesRepAgID:  rep.AgilysysID,
			},
		})
	}

	for _, spa := range reservation.SpaItems {
		items = append(items, model.LineItem{
			ConfirmationNumber: shared.FirstNonEmpty(spa.ConfirmationNumber, reservation.ConfirmationNumber),
			Name:               shared.FirstNonEmpty(spa.ActivityName, defaultSpaName),
			ItemType:           model.ItemTypeSpa,
			Price:              spa.Price,
			TaxAmount:          spa.TaxAmount,
			Metadata: model.LineItemMetadata{
				SpaService:     spa.ActivityName,
				StartDateTime:  spa.StartDateTime,
				EndDateTime:    spa.EndDateTime,
				GratuityAmount: spa.GratuityAmount,
				TherapistID:    spa.TherapistID,
				SalesRepHsID:   rep.HubSpotID,
				SalesRepAgID:   rep.AgilysysID,
			},
		})
	}

	return items
}

func nightItems(reservation model.Reservation, rep SalesRep) []model.LineItem {
	arrival, arrivalOK := shared.ParseDate(reservation.Stay.ArrivalDate)
	departure, departureOK := shared.ParseDate(reservation.Stay.DepartureDate)

	nights := 1
	if arrivalOK && departureOK {
		nights = NightCount(arrival, departure)
	}

	items := make([]model.LineItem, 0, nights)

	for n := range nights {
		date := constant.Empty
		name := fmt.Sprintf("Night %d", n+1)

		if arrivalOK {
			date = arrival.AddDate(0, 0, n).Format(constant.DateLayout)
			name = fmt.Sprintf("Night %d - %s", n+1, date)
		}

		items = append(items, model.LineItem{
			ConfirmationNumber: reservation.ConfirmationNumber,
			Name:               name,
			ItemType:           model.ItemTypeNight,
			Date:               date,
			Metadata: model.LineItemMetadata{
				RoomType:     reservation.Stay.RoomType,
				AssignedRoom: reservation.Stay.RoomNumber,
				SalesRepHsID: rep.HubSpotID,
				SalesRepAgID: rep.AgilysysID,
			},
		})
	}

	return items
}
