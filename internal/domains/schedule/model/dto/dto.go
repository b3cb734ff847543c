package dto

import (
	"sportshub/internal/domains/schedule/model"
	"sportshub/shared"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	gModel "sportshub/shared/model"
	"sportshub/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateScheduleRequest struct {
	SportID   string `json:"sport_id"   validate:"required"`
	VenueID   string `json:"venue_id"   validate:"required"`
	Date      string `json:"date"       validate:"required,day"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time"   validate:"required,clock"`
	Type      string `json:"type"       validate:"required,oneof=Practice Match"`
}

func (r *CreateScheduleRequest) ToModel(user string) (model.Schedule, error) {
	date, err := shared.ParseDay(r.Date)
	if err != nil {
		return model.Schedule{}, err //nolint:wrapcheck
	}

	start, err := shared.ParseClock(r.StartTime)
	if err != nil {
		return model.Schedule{}, err //nolint:wrapcheck
	}

	end, err := shared.ParseClock(r.EndTime)
	if err != nil {
		return model.Schedule{}, err //nolint:wrapcheck
	}

	return model.Schedule{
		ID:        uuid.NewString(),
		SportID:   r.SportID,
		VenueID:   r.VenueID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Type:      r.Type,
		Status:    constant.StatusPending,
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

// UpdateScheduleRequest is a partial edit. Omitted fields keep their current value.
type UpdateScheduleRequest struct {
	SportID   string `json:"sport_id"`
	VenueID   string `json:"venue_id"`
	Date      string `json:"date"       validate:"omitempty,day"`
	StartTime string `json:"start_time" validate:"omitempty,clock"`
	EndTime   string `json:"end_time"   validate:"omitempty,clock"`
	Type      string `json:"type"       validate:"omitempty,oneof=Practice Match"`
}

// Merge applies the request over current. Every edit sends the schedule back for review.
func (r *UpdateScheduleRequest) Merge(current model.Schedule) (model.Schedule, error) {
	merged := current
	merged.Status = constant.StatusPending

	if r.SportID != "" {
		merged.SportID = r.SportID
	}

	if r.VenueID != "" {
		merged.VenueID = r.VenueID
	}

	if r.Type != "" {
		merged.Type = r.Type
	}

	var err error

	if r.Date != "" {
		if merged.Date, err = shared.ParseDay(r.Date); err != nil {
			return merged, err //nolint:wrapcheck
		}
	}

	if r.StartTime != "" {
		if merged.StartTime, err = shared.ParseClock(r.StartTime); err != nil {
			return merged, err //nolint:wrapcheck
		}
	}

	if r.EndTime != "" {
		if merged.EndTime, err = shared.ParseClock(r.EndTime); err != nil {
			return merged, err //nolint:wrapcheck
		}
	}

	return merged, nil
}

// ScheduleChanges is the column set written by an edit.
type ScheduleChanges struct {
	SportID   string    `db:"sport_id"`
	VenueID   string    `db:"venue_id"`
	Date      time.Time `db:"date"`
	StartTime time.Time `db:"start_time"`
	EndTime   time.Time `db:"end_time"`
	Type      string    `db:"type"`
	Status    string    `db:"status"`
}

func NewScheduleChanges(merged model.Schedule) ScheduleChanges {
	return ScheduleChanges{
		SportID:   merged.SportID,
		VenueID:   merged.VenueID,
		Date:      merged.Date,
		StartTime: merged.StartTime,
		EndTime:   merged.EndTime,
		Type:      merged.Type,
		Status:    merged.Status,
	}
}

type ScheduleDecision struct {
	Status    string    `db:"status"`
	DecidedAt time.Time `db:"decided_at"`
}

type ScheduleResponse struct {
	ID            string `json:"id"`
	SportID       string `json:"sport_id"`
	SportName     string `json:"sport_name,omitempty"`
	CoachID       string `json:"coach_id,omitempty"`
	CoachName     string `json:"coach_name,omitempty"`
	CoachEmail    string `json:"coach_email,omitempty"`
	VenueID       string `json:"venue_id"`
	VenueName     string `json:"venue_name,omitempty"`
	VenueLocation string `json:"venue_location,omitempty"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	DecidedAt     string `json:"decided_at,omitempty"`
	gDto.Metadata
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func (r *ScheduleResponse) FromModel(model model.Schedule) {
	r.ID = model.ID
	r.SportID = model.SportID
	r.VenueID = model.VenueID
	r.Date = model.Date.Format(constant.DayFormat)
	r.StartTime = model.StartTime.Format(constant.ClockFormat)
	r.EndTime = model.EndTime.Format(constant.ClockFormat)
	r.Type = model.Type
	r.Status = model.Status

	if model.DecidedAt != nil {
		r.DecidedAt = timezone.Format(*model.DecidedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

func (r *ScheduleResponse) FromDetail(detail model.ScheduleDetail) {
	r.FromModel(detail.Schedule)

	r.SportName = deref(detail.SportName)
	r.CoachID = deref(detail.CoachID)
	r.CoachName = deref(detail.CoachName)
	r.CoachEmail = deref(detail.CoachEmail)
	r.VenueName = deref(detail.VenueName)
	r.VenueLocation = deref(detail.VenueLocation)
}

type GetSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	TotalData int                `json:"total_data"`
}

func (r *GetSchedulesResponse) FromDetails(details []model.ScheduleDetail) {
	r.TotalData = len(details)

	r.Schedules = make([]ScheduleResponse, len(details))
	for i, detail := range details {
		r.Schedules[i].FromDetail(detail)
	}
}
