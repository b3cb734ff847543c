package model

import (
	"fmt"
	"sportshub/shared/model"
)

const (
	TableName  = "sports"
	EntityName = "sport"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
	FieldCoachID     = "coach_id"
	FieldStatus      = "status"

	coachTable = "users"
)

type Sport struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	ImageURL    *string `db:"image_url"`
	CoachID     string  `db:"coach_id"`
	Status      string  `db:"status"`
	model.Metadata
}

// SportDetail is a sport together with the coach that requested it.
type SportDetail struct {
	Sport
	CoachName  *string `column:"name"  db:"coach_name"  table:"users"`
	CoachEmail *string `column:"email" db:"coach_email" table:"users"`
}

func (SportDetail) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %s ON %s.id = %s.%s", coachTable, coachTable, TableName, FieldCoachID)
}
