package dto

import (
	"sportshub/internal/domains/team/model"
	"sportshub/shared"
	gDto "sportshub/shared/dto"
	gModel "sportshub/shared/model"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MemberRequest struct {
	MemberName         string `json:"member_name"         validate:"required,max=100"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=50"`
	Role               string `json:"role"                validate:"omitempty,oneof=Player Captain 'Vice Captain'"`
	Faculty            string `json:"faculty"             validate:"required,oneof='Faculty of Applied Science' 'Faculty of Business Studies' 'Faculty of Technology Studies'"`
	Year               int    `json:"year"                validate:"required,min=1,max=4"`
}

func (r *MemberRequest) ToModel(teamID, user string, now time.Time) model.TeamMember {
	role := r.Role
	if role == "" {
		role = model.MemberRolePlayer
	}

	return model.TeamMember{
		ID:                 uuid.NewString(),
		TeamID:             teamID,
		MemberName:         strings.TrimSpace(r.MemberName),
		RegistrationNumber: strings.TrimSpace(r.RegistrationNumber),
		Role:               role,
		Faculty:            r.Faculty,
		Year:               r.Year,
		Metadata:           gModel.NewMetadata(user, now),
	}
}

// ToMembers builds the roster rows of teamID.
func ToMembers(reqs []MemberRequest, teamID, user string, now time.Time) []model.TeamMember {
	members := make([]model.TeamMember, len(reqs))
	for i := range reqs {
		members[i] = reqs[i].ToModel(teamID, user, now)
	}

	return members
}

type CreateTeamRequest struct {
	Name    string          `json:"team_name" validate:"required,max=500"`
	SportID string          `json:"sport_id"  validate:"required"`
	Members []MemberRequest `json:"members"   validate:"dive"`
}

// ToModel always yields an Inactive team; promotion is an admin action.
func (r *CreateTeamRequest) ToModel(user string, now time.Time) model.Team {
	return model.Team{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(r.Name),
		SportID:  r.SportID,
		Status:   model.StatusInactive,
		Metadata: gModel.NewMetadata(user, now),
	}
}

type UpdateTeamRequest struct {
	Name    string          `json:"team_name" validate:"required,max=500"`
	SportID string          `json:"sport_id"  validate:"required"`
	Members []MemberRequest `json:"members"   validate:"dive"`
}

type TeamChanges struct {
	Name    string `db:"name"`
	SportID string `db:"sport_id"`
	Status  string `db:"status"`
}

type ReplaceRosterRequest struct {
	Members []MemberRequest `json:"members" validate:"dive"`
}

type EditTeamRequest struct {
	Name    string          `json:"team_name" validate:"required,max=500"`
	Members []MemberRequest `json:"members"   validate:"dive"`
}

// Fork builds the Inactive copy of original that carries the requested edit.
func (r *EditTeamRequest) Fork(original model.Team, user string, now time.Time) model.Team {
	parent := original.ID

	return model.Team{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(r.Name),
		SportID:      original.SportID,
		Status:       model.StatusInactive,
		ParentTeamID: &parent,
		Metadata:     gModel.NewMetadata(user, now),
	}
}

type EditTeamResponse struct {
	NewTeamID string `json:"new_team_id"`
}

type TeamStatus struct {
	Status string `db:"status"`
}

type MemberResponse struct {
	ID                 string `json:"id"`
	MemberName         string `json:"member_name"`
	RegistrationNumber string `json:"registration_number"`
	Role               string `json:"role"`
	Faculty            string `json:"faculty"`
	Year               int    `json:"year"`
}

func (r *MemberResponse) FromModel(model model.TeamMember) {
	r.ID = model.ID
	r.MemberName = model.MemberName
	r.RegistrationNumber = model.RegistrationNumber
	r.Role = model.Role
	r.Faculty = model.Faculty
	r.Year = model.Year
}

type TeamResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"team_name"`
	SportID      string           `json:"sport_id"`
	SportName    string           `json:"sport_name,omitempty"`
	CoachID      string           `json:"coach_id,omitempty"`
	Status       string           `json:"status"`
	ParentTeamID string           `json:"parent_team_id,omitempty"`
	Members      []MemberResponse `json:"members"`
	gDto.Metadata
}

func (r *TeamResponse) FromModel(model model.Team, members []model.TeamMember) {
	r.ID = model.ID
	r.Name = model.Name
	r.SportID = model.SportID
	r.Status = model.Status

	if model.ParentTeamID != nil {
		r.ParentTeamID = *model.ParentTeamID
	}

	r.Members = make([]MemberResponse, len(members))
	for i, member := range members {
		r.Members[i].FromModel(member)
	}

	r.Metadata.FromModel(model.Metadata)
}

func (r *TeamResponse) FromDetail(detail model.TeamDetail, members []model.TeamMember) {
	r.FromModel(detail.Team, members)

	if detail.SportName != nil {
		r.SportName = *detail.SportName
	}

	if detail.CoachID != nil {
		r.CoachID = *detail.CoachID
	}
}

type GetTeamsResponse struct {
	Teams     []TeamResponse `json:"teams"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

// FromDetails attaches to every team its members from roster, keyed by team id.
func (r *GetTeamsResponse) FromDetails(details []model.TeamDetail, roster map[string][]model.TeamMember, total, limit int) {
	r.TotalData = total
	r.TotalPage = shared.CalculateTotalPage(total, limit)

	r.Teams = make([]TeamResponse, len(details))
	for i, detail := range details {
		r.Teams[i].FromDetail(detail, roster[detail.ID])
	}
}
