package dto

type QuestionDTO struct {
	ID      int64  `json:"id" example:"3"`
	Content string `json:"content" example:"Which planet is closest to the sun?"`
	OptionA string `json:"option_a" example:"Mercury"`
	OptionB string `json:"option_b" example:"Venus"`
	OptionC string `json:"option_c" example:"Mars"`
	OptionD string `json:"option_d" example:"Jupiter"`
}

type StartRoundResponseDTO struct {
	RoundID     int64       `json:"round_id" example:"12"`
	WagerAmount int64       `json:"wager_amount" example:"50"`
	Question    QuestionDTO `json:"question"`
}

type AnswerRequestDTO struct {
	Answer string `json:"answer" example:"A"`
}

type AnswerResponseDTO struct {
	IsCorrect    bool  `json:"is_correct" example:"true"`
	PayoutAmount int64 `json:"payout_amount" example:"100"`
	Balance      int64 `json:"balance" example:"150"`
}
