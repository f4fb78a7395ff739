package model

import (
	"strings"
)

type Status string

const (
	StatusReserved   Status = "Reserved"
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "CheckedIn"
	StatusCheckedOut Status = "CheckedOut"
	StatusCancelled  Status = "Cancelled"
	StatusUnknown    Status = "Unknown"
)

// Vendor spellings that route a status-only delivery to the cancellation path.
const (
	VendorStatusCanceled  = "Canceled"
	VendorStatusCancelled = "CANCELLED"
)

// ClassifyStatus maps a vendor status string onto the canonical enumeration.
func ClassifyStatus(raw string) Status {
	normalized := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(raw)))

	switch normalized {
	case "reserved", "booked", "tentative":
		return StatusReserved
	case "confirmed", "guaranteed":
		return StatusConfirmed
	case "checkedin", "inhouse", "arrived":
		return StatusCheckedIn
	case "checkedout", "departed":
		return StatusCheckedOut
	case "canceled", "cancelled", "cxl":
		return StatusCancelled
	default:
		return StatusUnknown
	}
}

type ItemType string

const (
	ItemTypeNight ItemType = "night"
	ItemTypeAddOn ItemType = "addon"
	ItemTypeSpa   ItemType = "spa"
)

type Guest struct {
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	ExternalProfileID string
}

type Stay struct {
	ArrivalDate   string
	DepartureDate string
	RoomType      string
	RoomNumber    string
	Adults        int
	Children      int
}

type AddOnItem struct {
	Name          string
	Price         string
	TaxAmount     string
	PostType      string
	DepositPolicy string
}

type SpaItem struct {
	ConfirmationNumber string
	ActivityName       string
	StartDateTime      string
	EndDateTime        string
	Price              string
	GratuityAmount     string
	TaxAmount          string
	TherapistID        string
}

// Reservation is the canonical record rebuilt on every sync.
type Reservation struct {
	ConfirmationNumber string
	ReservationID      string
	// Status is the vendor string verbatim.
	Status     string
	Guest      Guest
	Stay       Stay
	AddOnItems []AddOnItem
	SpaItems   []SpaItem

	CreateDate string
	OriginCode string
	Segment    string
	GuestType  string
}

func (r Reservation) StatusClass() Status {
	return ClassifyStatus(r.Status)
}

// IsCancelled matches the exact vendor cancellation literals.
func (r Reservation) IsCancelled() bool {
	return r.Status == VendorStatusCanceled || r.Status == VendorStatusCancelled
}

type LineItemMetadata struct {
	RoomType       string
	AssignedRoom   string
	PostType       string
	DepositPolicy  string
	SpaService     string
	StartDateTime  string
	EndDateTime    string
	GratuityAmount string
	TherapistID    string
	SalesRepHsID   string
	SalesRepAgID   string
}

type LineItem struct {
	ConfirmationNumber string
	Name               string
	ItemType           ItemType
	Date               string
	Price              string
	TaxAmount          string
	Metadata           LineItemMetadata
}

// Previous carries the pre-change values an UPDATED delivery may include.
type Previous struct {
	Status        string
	ArrivalDate   string
	DepartureDate string
	RoomType      string
}

func (p *Previous) Empty() bool {
	return p == nil || (p.Status == "" && p.ArrivalDate == "" && p.DepartureDate == "" && p.RoomType == "")
}
