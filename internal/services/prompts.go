package services

import (
	"time"

	apierrors "api/internal/errors"
	"api/internal/handlers"
	m "api/internal/middlewares"
	"api/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PromptService manages the text-generation prompt presets and proxies the
// "test" action to the external generation API.
type PromptService struct {
	DB         *gorm.DB
	Generation models.GenerationConfig
}

func (s PromptService) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", handlers.GetListHandler(s.List))
	r.With(m.Validate[models.PromptBody]).Post("/", handlers.CreateHandler(s.Upsert))
	r.With(m.Validate[models.PromptBody]).Post("/test", handlers.CreateHandler(s.Test))
	r.Get("/{id}", handlers.GetOneStringHandler(s.Get))
	return r
}

func (s PromptService) List(
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint,
) ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := s.DB.Order("id ASC").Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

func (s PromptService) Get(
	_ *zap.Logger,
	_ models.UserClaims,
	id string,
) (models.Prompt, error) {
	var prompt models.Prompt
	result := s.DB.Where("id = ?", id).First(&prompt)
	if result.RowsAffected != 1 {
		return models.Prompt{}, apierrors.NewAPIError(404, apierrors.ErrNotFound)
	}
	return prompt, nil
}

// Upsert saves a preset under its string identifier, creating it on first
// write.
func (s PromptService) Upsert(
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint,
	body models.PromptBody,
) (models.Prompt, error) {
	prompt := models.Prompt{
		ID:               body.ID,
		PromptText:       body.PromptText,
		Temperature:      body.Temperature,
		FrequencyPenalty: body.FrequencyPenalty,
	}

	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"prompt_text", "temperature", "frequency_penalty"}),
	}).Create(&prompt).Error
	if err != nil {
		return models.Prompt{}, err
	}
	return prompt, nil
}

type generationRequest struct {
	Model            string  `json:"model"`
	Prompt           string  `json:"prompt"`
	Temperature      float64 `json:"temperature"`
	FrequencyPenalty float64 `json:"frequency_penalty"`
}

type generationResponse struct {
	Text string `json:"text"`
}

// Test runs the submitted preset against the generation API without saving
// it, so admins can tune wording before committing.
func (s PromptService) Test(
	logger *zap.Logger,
	_ models.UserClaims,
	_ []uint,
	body models.PromptBody,
) (models.GeneratedTextResponse, error) {
	if s.Generation.BaseURL == "" {
		return models.GeneratedTextResponse{}, apierrors.NewAPIError(502, apierrors.ErrGenerationFailed)
	}

	client := resty.New().
		SetBaseURL(s.Generation.BaseURL).
		SetTimeout(time.Duration(s.Generation.TimeoutSeconds) * time.Second).
		SetAuthToken(s.Generation.APIKey)

	var generated generationResponse
	response, err := client.R().
		SetBody(generationRequest{
			Model:            s.Generation.Model,
			Prompt:           body.PromptText,
			Temperature:      body.Temperature,
			FrequencyPenalty: body.FrequencyPenalty,
		}).
		SetResult(&generated).
		Post("/v1/completions")
	if err != nil || response.IsError() {
		logger.Error("Generation request failed", zap.Error(err))
		return models.GeneratedTextResponse{}, apierrors.NewAPIError(502, apierrors.ErrGenerationFailed)
	}

	return models.GeneratedTextResponse{GeneratedText: generated.Text}, nil
}
