package model

import (
	"fmt"
	"sportshub/shared/model"
)

const (
	TableName  = "teams"
	EntityName = "team"

	FieldID           = "id"
	FieldName         = "name"
	FieldSportID      = "sport_id"
	FieldStatus       = "status"
	FieldParentTeamID = "parent_team_id"

	SportTable      = "sports"
	SportFieldCoach = "coach_id"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

const (
	MemberTableName  = "team_members"
	MemberEntityName = "team_member"

	MemberFieldID     = "id"
	MemberFieldTeamID = "team_id"
)

const (
	MemberRolePlayer      = "Player"
	MemberRoleCaptain     = "Captain"
	MemberRoleViceCaptain = "Vice Captain"
)

type Team struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	SportID      string  `db:"sport_id"`
	Status       string  `db:"status"`
	ParentTeamID *string `db:"parent_team_id"`
	model.Metadata
}

type TeamDetail struct {
	Team
	SportName *string `column:"name"     db:"sport_name" table:"sports"`
	CoachID   *string `column:"coach_id" db:"coach_id"   table:"sports"`
}

func (TeamDetail) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %s ON %s.id = %s.%s", SportTable, SportTable, TableName, FieldSportID)
}

// TeamMember rows are owned by their team and removed with it.
type TeamMember struct {
	ID                 string `db:"id"`
	TeamID             string `db:"team_id"`
	MemberName         string `db:"member_name"`
	RegistrationNumber string `db:"registration_number"`
	Role               string `db:"role"`
	Faculty            string `db:"faculty"`
	Year               int    `db:"year"`
	model.Metadata
}
