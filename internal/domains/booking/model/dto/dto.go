package dto

import (
	"sportshub/internal/domains/booking/model"
	"sportshub/shared"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	gModel "sportshub/shared/model"
	"sportshub/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SubmitBookingRequest struct {
	Role            string `json:"role"             validate:"required,oneof=Student Coach Staff"`
	UserName        string `json:"user_name"        validate:"required,max=100"`
	UserEmail       string `json:"user_email"       validate:"required,email,max=150"`
	UniversityID    string `json:"university_id"    validate:"required_if=Role Student,max=50"`
	SportID         string `json:"sport_id"         validate:"required"`
	TeamName        string `json:"team_name"        validate:"max=100"`
	VenueID         string `json:"venue_id"         validate:"required"`
	Date            string `json:"date"             validate:"required,day"`
	StartTime       string `json:"start_time"       validate:"required,clock"`
	EndTime         string `json:"end_time"         validate:"required,clock"`
	EventName       string `json:"event_name"       validate:"required,max=150"`
	AdditionalNotes string `json:"additional_notes" validate:"max=2000"`
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return &value
}

// ToModel expects a request that already passed validation, so the date and clock values parse.
func (r *SubmitBookingRequest) ToModel(user string) (model.Booking, error) {
	date, err := shared.ParseDay(r.Date)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	start, err := shared.ParseClock(r.StartTime)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	end, err := shared.ParseClock(r.EndTime)
	if err != nil {
		return model.Booking{}, err //nolint:wrapcheck
	}

	return model.Booking{
		ID:              uuid.NewString(),
		Role:            r.Role,
		UserName:        r.UserName,
		UserEmail:       r.UserEmail,
		UniversityID:    optional(r.UniversityID),
		SportID:         r.SportID,
		TeamName:        optional(r.TeamName),
		VenueID:         r.VenueID,
		Date:            date,
		StartTime:       start,
		EndTime:         end,
		EventName:       r.EventName,
		AdditionalNotes: optional(r.AdditionalNotes),
		Status:          constant.StatusPending,
		Metadata:        gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
	Reason string `json:"reason" validate:"max=500"`
}

// BookingDecision is the persisted part of an approval or rejection.
type BookingDecision struct {
	Status          string    `db:"status"`
	RejectionReason *string   `db:"rejection_reason"`
	DecidedAt       time.Time `db:"decided_at"`
}

// Fields returns the update map. Unlike TransformFields it keeps a nil reason so approval clears it.
func (d BookingDecision) Fields(user string) map[string]any {
	return map[string]any{
		model.FieldStatus:          d.Status,
		model.FieldRejectionReason: d.RejectionReason,
		model.FieldDecidedAt:       d.DecidedAt,
		constant.FieldModifiedAt:   d.DecidedAt,
		constant.FieldModifiedBy:   user,
	}
}

type BookingResponse struct {
	ID              string `json:"id"`
	Role            string `json:"role"`
	UserName        string `json:"user_name"`
	UserEmail       string `json:"user_email"`
	UniversityID    string `json:"university_id,omitempty"`
	SportID         string `json:"sport_id"`
	SportName       string `json:"sport_name,omitempty"`
	TeamName        string `json:"team_name,omitempty"`
	VenueID         string `json:"venue_id"`
	VenueName       string `json:"venue_name,omitempty"`
	VenueLocation   string `json:"venue_location,omitempty"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	EventName       string `json:"event_name"`
	AdditionalNotes string `json:"additional_notes,omitempty"`
	Status          string `json:"status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	DecidedAt       string `json:"decided_at,omitempty"`
	gDto.Metadata
}

func deref(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Role = model.Role
	r.UserName = model.UserName
	r.UserEmail = model.UserEmail
	r.UniversityID = deref(model.UniversityID)
	r.SportID = model.SportID
	r.TeamName = deref(model.TeamName)
	r.VenueID = model.VenueID
	r.Date = model.Date.Format(constant.DayFormat)
	r.StartTime = model.StartTime.Format(constant.ClockFormat)
	r.EndTime = model.EndTime.Format(constant.ClockFormat)
	r.EventName = model.EventName
	r.AdditionalNotes = deref(model.AdditionalNotes)
	r.Status = model.Status
	r.RejectionReason = deref(model.RejectionReason)

	if model.DecidedAt != nil {
		r.DecidedAt = timezone.Format(*model.DecidedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

func (r *BookingResponse) FromDetail(detail model.BookingDetail) {
	r.FromModel(detail.Booking)

	r.SportName = deref(detail.SportName)
	r.VenueName = deref(detail.VenueName)
	r.VenueLocation = deref(detail.VenueLocation)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromDetails(details []model.BookingDetail) {
	r.TotalData = len(details)

	r.Bookings = make([]BookingResponse, len(details))
	for i, detail := range details {
		r.Bookings[i].FromDetail(detail)
	}
}

type UpdateBookingStatusResponse struct {
	Booking  BookingResponse `json:"booking"`
	Notified bool            `json:"notified"`
	Warning  string          `json:"warning,omitempty"`
}
