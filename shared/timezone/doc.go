// Package timezone holds the property's timezone.
//
// The zone comes from APP_TIMEZONE on first use and defaults to UTC. Stay dates from the PMS
// carry no zone, so comparisons against "today" go through CalendarDate:
//
//	today := timezone.CalendarDate(timezone.Now())
//	arrival, _ := shared.ParseDate(stay.ArrivalDate)
//	if arrival.Equal(today) { ... }
package timezone
