package dto

import (
	"sportshub/internal/domains/sport/model"
	"sportshub/shared"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	gModel "sportshub/shared/model"
	"sportshub/shared/timezone"

	"github.com/google/uuid"
)

type CreateSportRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Image       string `json:"image"       validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
}

func (r *CreateSportRequest) ToModel(coachID string, imageURL *string) model.Sport {
	return model.Sport{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    imageURL,
		CoachID:     coachID,
		Status:      constant.StatusPending,
		Metadata:    gModel.NewMetadata(coachID, timezone.Now()),
	}
}

type UpdateSportStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=Approved Rejected"`
}

type SportResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	CoachID     string `json:"coach_id"`
	CoachName   string `json:"coach_name,omitempty"`
	CoachEmail  string `json:"coach_email,omitempty"`
	Status      string `json:"status"`
	gDto.Metadata
}

func (r *SportResponse) FromModel(model model.Sport) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.CoachID = model.CoachID
	r.Status = model.Status

	if model.ImageURL != nil {
		r.ImageURL = *model.ImageURL
	}

	r.Metadata.FromModel(model.Metadata)
}

func (r *SportResponse) FromDetail(detail model.SportDetail) {
	r.FromModel(detail.Sport)

	if detail.CoachName != nil {
		r.CoachName = *detail.CoachName
	}

	if detail.CoachEmail != nil {
		r.CoachEmail = *detail.CoachEmail
	}
}

type GetSportsResponse struct {
	Sports    []SportResponse `json:"sports"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetSportsResponse) FromDetails(details []model.SportDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Sports = make([]SportResponse, len(details))
	for i, detail := range details {
		r.Sports[i].FromDetail(detail)
	}
}
