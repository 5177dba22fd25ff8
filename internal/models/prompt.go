package models

type Prompt struct {
	ID               string  `gorm:"primarykey" json:"id"`
	PromptText       string  `json:"prompt_text"`
	Temperature      float64 `json:"temperature"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
}

type PromptBody struct {
	ID               string  `json:"id"                validate:"required,max=64"`
	PromptText       string  `json:"prompt_text"       validate:"required,max=20000"`
	Temperature      float64 `json:"temperature"       validate:"min=0,max=1"`
	FrequencyPenalty float64 `json:"frequency_penalty" validate:"min=0,max=2"`
}

type GeneratedTextResponse struct {
	GeneratedText string `json:"generated_text"`
}
