package model

import "sportshub/shared/model"

const (
	TableName  = "contact_requests"
	EntityName = "contact_request"

	FieldID           = "id"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldRole         = "role"
	FieldUniversityID = "university_id"
	FieldSubject      = "subject"
	FieldMessage      = "message"
	FieldStatus       = "status"
)

const (
	RoleStudent = "Student"
	RoleCoach   = "Coach"
	RoleStaff   = "Staff"
)

const (
	StatusPending  = "Pending"
	StatusRead     = "Read"
	StatusResolved = "Resolved"
)

type ContactRequest struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Email        string  `db:"email"`
	Role         string  `db:"role"`
	UniversityID *string `db:"university_id"`
	Subject      string  `db:"subject"`
	Message      string  `db:"message"`
	Status       string  `db:"status"`
	model.Metadata
}
