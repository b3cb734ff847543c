package dto

import (
	"sportshub/internal/domains/venue/model"
	"sportshub/shared"
	gDto "sportshub/shared/dto"
	gModel "sportshub/shared/model"
	"sportshub/shared/timezone"

	"github.com/google/uuid"
)

type CreateVenueRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Location string `json:"location" validate:"omitempty,max=150"`
	Capacity int    `json:"capacity" validate:"omitempty,min=0"`
	Status   string `json:"status"   validate:"omitempty,oneof=Available Unavailable"`
}

func (c *CreateVenueRequest) ToModel(user string) model.Venue {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Venue{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Location: c.Location,
		Capacity: c.Capacity,
		Status:   status,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateVenueRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Location string `db:"location" json:"location" validate:"omitempty,max=150"`
	Capacity *int   `db:"capacity" json:"capacity" validate:"omitempty,min=0"`
	Status   string `db:"status"   json:"status"   validate:"omitempty,oneof=Available Unavailable"`
}

type VenueResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
	gDto.Metadata
}

func (r *VenueResponse) FromModel(model model.Venue) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Capacity = model.Capacity
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetVenuesResponse struct {
	Venues    []VenueResponse `json:"venues"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetVenuesResponse) FromModels(models []model.Venue, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Venues = make([]VenueResponse, len(models))
	for i, mod := range models {
		r.Venues[i].FromModel(mod)
	}
}
