package dto

import (
	"time"

	sportModel "sportshub/internal/domains/sport/model"
	teamModel "sportshub/internal/domains/team/model"
	userModel "sportshub/internal/domains/user/model"
)

type CoachResponse struct {
	ID        string    `json:"user_id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *CoachResponse) FromModel(user userModel.User) {
	r.ID = user.ID
	r.Name = user.Name
	r.Username = user.Username
	r.Email = user.Email
	r.Role = user.Role
	r.Status = user.Status
	r.CreatedAt = user.CreatedAt
}

type GetCoachesResponse struct {
	Coaches   []CoachResponse `json:"coaches"`
	TotalData int             `json:"total_data"`
}

func (r *GetCoachesResponse) FromModels(users []userModel.User) {
	r.TotalData = len(users)

	r.Coaches = make([]CoachResponse, len(users))
	for i, user := range users {
		r.Coaches[i].FromModel(user)
	}
}

type CoachSport struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type CoachTeam struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SportID   string  `json:"sport_id"`
	SportName *string `json:"sport_name"`
	Status    string  `json:"status"`
}

// CoachDetailsResponse is a coach with the sports they lead and the teams of those sports.
type CoachDetailsResponse struct {
	Coach  CoachResponse `json:"coach"`
	Sports []CoachSport  `json:"sports"`
	Teams  []CoachTeam   `json:"teams"`
}

func (r *CoachDetailsResponse) FromModels(user userModel.User, sports []sportModel.SportDetail, teams []teamModel.TeamDetail) {
	r.Coach.FromModel(user)

	r.Sports = make([]CoachSport, len(sports))
	for i, sport := range sports {
		r.Sports[i] = CoachSport{ID: sport.ID, Name: sport.Name, Status: sport.Status}
	}

	r.Teams = make([]CoachTeam, len(teams))
	for i, team := range teams {
		r.Teams[i] = CoachTeam{
			ID:        team.ID,
			Name:      team.Name,
			SportID:   team.SportID,
			SportName: team.SportName,
			Status:    team.Status,
		}
	}
}
