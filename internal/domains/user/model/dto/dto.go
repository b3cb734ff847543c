package dto

import (
	"sportshub/internal/domains/user/model"
	"sportshub/shared"
	"sportshub/shared/constant"
	gDto "sportshub/shared/dto"
	gModel "sportshub/shared/model"
	"sportshub/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Username string `json:"username" validate:"required,min=3,max=100,alphanum"`
	Email    string `json:"email"    validate:"required,email,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role"     validate:"omitempty,oneof=Admin Coach"`
}

func (r *CreateUserRequest) ToModel(createdBy, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleCoach
	}

	return model.User{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Username: r.Username,
		Email:    r.Email,
		Password: hashedPassword,
		Role:     role,
		Status:   model.StatusActive,
		Metadata: gModel.NewMetadata(createdBy, timezone.Now()),
	}
}

type UpdateUserRequest struct {
	Name  string `db:"name"  json:"name"  validate:"omitempty,max=100"`
	Email string `db:"email" json:"email" validate:"omitempty,email,max=150"`
	Role  string `db:"role"  json:"role"  validate:"omitempty,oneof=Admin Coach"`
}

type UpdateStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=Active Inactive"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	LastLogin string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Username = model.Username
	r.Email = model.Email
	r.Role = model.Role
	r.Status = model.Status

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
