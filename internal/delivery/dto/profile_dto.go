package dto

// UpdateProfileRequest is a sparse update: nil fields are left untouched.
type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email     *string `json:"email" validate:"omitempty,email,orgemail"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=male female"`
	PhoneNum  *string `json:"phone_num" validate:"omitempty,max=20"`
	Address   *string `json:"address" validate:"omitempty,max=500"`
	Birthdate *string `json:"birthdate" validate:"omitempty,date"`
}

// IsEmpty reports whether no field was supplied.
func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.Name == nil && r.Email == nil && r.Gender == nil &&
		r.PhoneNum == nil && r.Address == nil && r.Birthdate == nil
}

type ChangePasswordRequest struct {
	CurrentPassword         string `json:"current_password"`
	NewPassword             string `json:"new_password"`
	NewPasswordConfirmation string `json:"new_password_confirmation"`
}
