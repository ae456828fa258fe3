package dto

// UpdateProfileRequest payload for setting display name and year group.
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" validate:"required,max=100"`
	YearGroup   string `json:"year_group" validate:"required"`
	UserType    string `json:"user_type" validate:"omitempty,oneof=student loved_one"`
}
