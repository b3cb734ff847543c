package dto_test

import (
	"errors"
	"net/http"
	"testing"

	val "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportshub/internal/domains/team/model/dto"
	"sportshub/shared/failure"
	"sportshub/shared/validator"
)

func member(name string) dto.MemberRequest {
	return dto.MemberRequest{
		MemberName:         name,
		RegistrationNumber: "AS/2021/" + name,
		Role:               "Vice Captain",
		Faculty:            "Faculty of Applied Science",
		Year:               2,
	}
}

func TestMemberRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m *dto.MemberRequest)
		wantErr string
	}{
		{name: "valid member", mutate: func(*dto.MemberRequest) {}},
		{
			name:    "faculty outside the allowed set",
			mutate:  func(m *dto.MemberRequest) { m.Faculty = "Faculty of Medicine" },
			wantErr: "faculty must be one of",
		},
		{
			name:    "year below one",
			mutate:  func(m *dto.MemberRequest) { m.Year = -1 },
			wantErr: "year must be greater than or equal to 1",
		},
		{
			name:    "year above four",
			mutate:  func(m *dto.MemberRequest) { m.Year = 5 },
			wantErr: "year must be less than or equal to 4",
		},
		{
			name:    "unknown role",
			mutate:  func(m *dto.MemberRequest) { m.Role = "Coach" },
			wantErr: "role must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := member("Kasun")
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateTeamRequest_DiveReachesEveryMember(t *testing.T) {
	req := dto.CreateTeamRequest{
		Name:    "Blue Hawks",
		SportID: "sport-1",
		Members: []dto.MemberRequest{member("A"), member("B"), member("C"), member("D"), member("E")},
	}

	require.NoError(t, validator.ValidateStruct(&req))

	req.Members[2].Year = 7

	err := validator.ValidateStruct(&req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "year must be less than or equal to 4")

	var fieldErrs val.ValidationErrors

	require.True(t, errors.As(val.New().Struct(&req), &fieldErrs))
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "CreateTeamRequest.Members[2].Year", fieldErrs[0].StructNamespace())
}
