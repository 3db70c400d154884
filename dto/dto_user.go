package dto

type UpdateUserReq struct {
	FullName        string `json:"fullName" validate:"max=100"`
	Email           string `json:"email"    validate:"omitempty,email"`
	Username        string `json:"username" validate:"omitempty,min=3,max=30"`
	Bio             string `json:"bio"      validate:"max=300"`
	Link            string `json:"link"     validate:"max=200"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword" validate:"omitempty,min=6"`
	ProfileImg      string `json:"profileImg"`
	CoverImg        string `json:"coverImg"`
}
