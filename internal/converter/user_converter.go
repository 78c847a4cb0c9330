package converter

import (
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/delivery/dto"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/validator"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.RoleID.String(),
		Gender:    user.Gender,
		PhoneNum:  user.PhoneNum,
		Address:   user.Address,
		IsActive:  user.Active(),
		CreatedAt: user.CreatedAt,
	}
	if user.Birthdate != nil {
		birthdate := user.Birthdate.Format(validator.DateLayout)
		response.Birthdate = &birthdate
	}

	return response
}

// UsersToResponses converts a slice of User entities to slice of UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

// UserToSummary converts a User entity to the compact UserSummary DTO
func UserToSummary(user *entity.User) *dto.UserSummary {
	if user == nil {
		return nil
	}

	return &dto.UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.RoleID.String(),
	}
}
