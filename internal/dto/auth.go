package dto

type RegisterRequestDTO struct {
	Login        string `json:"login" example:"champion42"`
	Password     string `json:"password" example:"s3cret"`
	ReferralCode string `json:"referral_code,omitempty" example:"friend1"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" example:"champion42"`
	Password string `json:"password" example:"s3cret"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
}
