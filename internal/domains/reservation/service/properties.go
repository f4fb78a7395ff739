package service

import (
	"strings"

	"pmsbridge/infras/hubspot"
	"pmsbridge/internal/domains/reservation/model"
	"pmsbridge/shared"
)

const (
	dealPropertyStage    = "dealstage"
	dealPropertyPipeline = "pipeline"

	defaultLineItemPrice = "0"
)

// CRMFields names the deal pipeline settings and custom properties.
type CRMFields struct {
	Pipeline               string
	InitialStage           string
	CancelledStage         string
	PropConfirmationNumber string
	PropAkiaURL            string
}

func dealProperties(reservation model.Reservation, fields CRMFields, akiaURL string) hubspot.Properties {
	properties := hubspot.Properties{}

	set(properties, "dealname", strings.TrimSpace(reservation.Guest.LastName+" "+reservation.ConfirmationNumber))
	set(properties, fields.PropConfirmationNumber, reservation.ConfirmationNumber)
	set(properties, "arrival_date", reservation.Stay.ArrivalDate)
	set(properties, "villa_type", reservation.Stay.RoomType)
	set(properties, "villa", reservation.Stay.RoomNumber)
	set(properties, "origin_code", reservation.OriginCode)
	set(properties, "segment_1", reservation.Segment)
	set(properties, "deposit_schedule", reservation.CreateDate)
	set(properties, "guest_type", reservation.GuestType)
	set(properties, fields.PropAkiaURL, akiaURL)

	if closeDate, ok := shared.EpochMillis(reservation.Stay.DepartureDate); ok {
		properties["closedate"] = closeDate
	}

	return properties
}

func lineItemProperties(item model.LineItem) hubspot.Properties {
	properties := hubspot.Properties{
		"name":     item.Name,
		"price":    shared.FirstNonEmpty(item.Price, defaultLineItemPrice),
		"quantity": "1",
	}

	set(properties, "confirmation_number", item.ConfirmationNumber)
	set(properties, "item_type", string(item.ItemType))
	set(properties, "tax_amount", item.TaxAmount)
	set(properties, "date_of_night", item.Date)
	set(properties, "deposit_policy", item.Metadata.DepositPolicy)
	set(properties, "sales_rep_hs_id", item.Metadata.SalesRepHsID)
	set(properties, "sales_rep_ag_id", item.Metadata.SalesRepAgID)
	set(properties, "start_date_time", item.Metadata.StartDateTime)
	set(properties, "end_date_time", item.Metadata.EndDateTime)
	set(properties, "spa_service", item.Metadata.SpaService)
	set(properties, "gratuity_amount", item.Metadata.GratuityAmount)
	set(properties, "therapist_id", item.Metadata.TherapistID)
	set(properties, "villa_type", item.Metadata.RoomType)
	set(properties, "post_type", item.Metadata.PostType)
	set(properties, "assigned_room", item.Metadata.AssignedRoom)

	return properties
}

// set skips empty values.
func set(properties hubspot.Properties, key, value string) {
	if key == "" || strings.TrimSpace(value) == "" {
		return
	}

	properties[key] = value
}
