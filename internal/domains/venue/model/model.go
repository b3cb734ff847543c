package model

import "sportshub/shared/model"

const (
	TableName  = "venues"
	EntityName = "venue"

	FieldID       = "id"
	FieldName     = "name"
	FieldLocation = "location"
	FieldCapacity = "capacity"
	FieldStatus   = "status"
)

const (
	StatusAvailable   = "Available"
	StatusUnavailable = "Unavailable"
)

type Venue struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Capacity int    `db:"capacity"`
	Status   string `db:"status"`
	model.Metadata
}
