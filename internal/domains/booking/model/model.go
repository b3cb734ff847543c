package model

import (
	"fmt"
	"sportshub/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldRole            = "role"
	FieldUserName        = "user_name"
	FieldUserEmail       = "user_email"
	FieldUniversityID    = "university_id"
	FieldSportID         = "sport_id"
	FieldTeamName        = "team_name"
	FieldVenueID         = "venue_id"
	FieldDate            = "date"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldEventName       = "event_name"
	FieldAdditionalNotes = "additional_notes"
	FieldStatus          = "status"
	FieldRejectionReason = "rejection_reason"
	FieldDecidedAt       = "decided_at"

	sportTable = "sports"
	venueTable = "venues"
)

const (
	RoleStudent = "Student"
	RoleCoach   = "Coach"
	RoleStaff   = "Staff"
)

type Booking struct {
	ID              string     `db:"id"`
	Role            string     `db:"role"`
	UserName        string     `db:"user_name"`
	UserEmail       string     `db:"user_email"`
	UniversityID    *string    `db:"university_id"`
	SportID         string     `db:"sport_id"`
	TeamName        *string    `db:"team_name"`
	VenueID         string     `db:"venue_id"`
	Date            time.Time  `db:"date"`
	StartTime       time.Time  `db:"start_time"`
	EndTime         time.Time  `db:"end_time"`
	EventName       string     `db:"event_name"`
	AdditionalNotes *string    `db:"additional_notes"`
	Status          string     `db:"status"`
	RejectionReason *string    `db:"rejection_reason"`
	DecidedAt       *time.Time `db:"decided_at"`
	model.Metadata
}

// BookingDetail is a booking joined with the names of its sport and venue.
type BookingDetail struct {
	Booking
	SportName     *string `column:"name"     db:"sport_name"     table:"sports"`
	VenueName     *string `column:"name"     db:"venue_name"     table:"venues"`
	VenueLocation *string `column:"location" db:"venue_location" table:"venues"`
}

func (BookingDetail) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %s ON %s.id = %s.%s LEFT JOIN %s ON %s.id = %s.%s",
		sportTable, sportTable, TableName, FieldSportID,
		venueTable, venueTable, TableName, FieldVenueID,
	)
}
