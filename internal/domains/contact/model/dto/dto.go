package dto

import (
	"strings"

	"sportshub/internal/domains/contact/model"
	"sportshub/shared"
	gDto "sportshub/shared/dto"
	gModel "sportshub/shared/model"
	"sportshub/shared/timezone"

	"github.com/google/uuid"
)

type CreateContactRequest struct {
	Name         string `json:"name"          validate:"required,max=100"`
	Email        string `json:"email"         validate:"required,email,max=100"`
	Role         string `json:"role"          validate:"required,oneof=Student Coach Staff"`
	UniversityID string `json:"university_id" validate:"omitempty,max=50"`
	Subject      string `json:"subject"       validate:"required,max=150"`
	Message      string `json:"message"       validate:"required"`
}

// ToModel keeps the university id for students only.
func (r *CreateContactRequest) ToModel(user string) model.ContactRequest {
	contact := model.ContactRequest{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Role:     r.Role,
		Subject:  strings.TrimSpace(r.Subject),
		Message:  r.Message,
		Status:   model.StatusPending,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}

	if universityID := strings.TrimSpace(r.UniversityID); r.Role == model.RoleStudent && universityID != "" {
		contact.UniversityID = &universityID
	}

	return contact
}

// Blank reports whether a required text field holds only whitespace.
func (r *CreateContactRequest) Blank() bool {
	return strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Subject) == "" || strings.TrimSpace(r.Message) == ""
}

type UpdateContactStatusRequest struct {
	Status string `db:"status" json:"status" validate:"omitempty,oneof=Pending Read Resolved"`
}

// StatusOrDefault marks the request as read when no status is given.
func (r UpdateContactStatusRequest) StatusOrDefault() string {
	if r.Status == "" {
		return model.StatusRead
	}

	return r.Status
}

type ContactResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	UniversityID *string `json:"university_id"`
	Subject      string  `json:"subject"`
	Message      string  `json:"message"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (r *ContactResponse) FromModel(model model.ContactRequest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Role = model.Role
	r.UniversityID = model.UniversityID
	r.Subject = model.Subject
	r.Message = model.Message
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetContactsResponse struct {
	Contacts  []ContactResponse `json:"contact_requests"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetContactsResponse) FromModels(models []model.ContactRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Contacts = make([]ContactResponse, len(models))
	for i, mod := range models {
		r.Contacts[i].FromModel(mod)
	}
}
