package model

import (
	"fmt"
	"sportshub/shared/model"
	"time"
)

const (
	TableName  = "schedules"
	EntityName = "schedule"

	FieldID        = "id"
	FieldSportID   = "sport_id"
	FieldVenueID   = "venue_id"
	FieldDate      = "date"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldType      = "type"
	FieldStatus    = "status"
	FieldDecidedAt = "decided_at"

	SportTable      = "sports"
	SportFieldCoach = "coach_id"

	coachTable = "users"
	venueTable = "venues"
)

const (
	TypePractice = "Practice"
	TypeMatch    = "Match"
)

type Schedule struct {
	ID        string     `db:"id"`
	SportID   string     `db:"sport_id"`
	VenueID   string     `db:"venue_id"`
	Date      time.Time  `db:"date"`
	StartTime time.Time  `db:"start_time"`
	EndTime   time.Time  `db:"end_time"`
	Type      string     `db:"type"`
	Status    string     `db:"status"`
	DecidedAt *time.Time `db:"decided_at"`
	model.Metadata
}

// ScheduleDetail carries the sport, its coach and the venue alongside the schedule.
type ScheduleDetail struct {
	Schedule
	SportName     *string `column:"name"     db:"sport_name"     table:"sports"`
	CoachID       *string `column:"coach_id" db:"coach_id"       table:"sports"`
	CoachName     *string `column:"name"     db:"coach_name"     table:"users"`
	CoachEmail    *string `column:"email"    db:"coach_email"    table:"users"`
	VenueName     *string `column:"name"     db:"venue_name"     table:"venues"`
	VenueLocation *string `column:"location" db:"venue_location" table:"venues"`
}

func (ScheduleDetail) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %s ON %s.id = %s.%s LEFT JOIN %s ON %s.id = %s.%s LEFT JOIN %s ON %s.id = %s.%s",
		SportTable, SportTable, TableName, FieldSportID,
		coachTable, coachTable, SportTable, SportFieldCoach,
		venueTable, venueTable, TableName, FieldVenueID,
	)
}
