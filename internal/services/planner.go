package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Latesh-31/Adaptlearn/internal/apperr"
	"github.com/Latesh-31/Adaptlearn/internal/llm"
	"github.com/Latesh-31/Adaptlearn/internal/logger"
	"github.com/Latesh-31/Adaptlearn/internal/models"

	"gorm.io/gorm"
)

// ModuleCount is the fixed roadmap length. A roadmap of any other size
// is rejected outright, never truncated or padded.
const ModuleCount = 6

type PlannerService struct {
	db     *gorm.DB
	oracle llm.Provider
	log    *logger.Logger
}

func NewPlannerService(db *gorm.DB, oracle llm.Provider, log *logger.Logger) *PlannerService {
	return &PlannerService{db: db, oracle: oracle, log: log}
}

type syllabusPayload struct {
	Modules []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"modules"`
}

// PlanRoadmap turns a graded assessment into a new Course with a gated
// 6-module roadmap. Modules 1-2 target the identified weaknesses.
func (s *PlannerService) PlanRoadmap(ctx context.Context, assessment *models.Assessment) (*models.Course, error) {
	if !assessment.Graded() {
		return nil, apperr.InvalidState("assessment must be graded before planning")
	}

	wrongCount := 0
	for _, q := range assessment.Questions {
		if q.IsCorrect != nil && !*q.IsCorrect {
			wrongCount++
		}
	}

	resp, err := s.oracle.Generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: syllabusPrompt(assessment.Topic, *assessment.Score, assessment.Weaknesses, wrongCount, len(assessment.Questions)),
		}},
		MaxTokens:   2048,
		Temperature: 0.7,
		JSONOutput:  true,
	})
	if err != nil {
		return nil, apperr.AITransport(err)
	}

	var payload syllabusPayload
	if err := json.Unmarshal([]byte(llm.CleanJSON(resp.Content)), &payload); err != nil {
		return nil, apperr.AIFormat("roadmap generation returned malformed JSON", err)
	}

	if len(payload.Modules) != ModuleCount {
		return nil, apperr.AICurriculum(fmt.Sprintf("roadmap must have exactly %d modules, got %d", ModuleCount, len(payload.Modules)))
	}

	modules := make([]models.Module, ModuleCount)
	for i, m := range payload.Modules {
		if strings.TrimSpace(m.Title) == "" || strings.TrimSpace(m.Description) == "" {
			return nil, apperr.AICurriculum(fmt.Sprintf("module %d is missing a title or description", i+1))
		}
		status := models.ModuleStatusLocked
		if i == 0 {
			status = models.ModuleStatusActive
		}
		modules[i] = models.Module{
			OrderNum:    i + 1,
			Title:       m.Title,
			Description: m.Description,
			Status:      status,
		}
	}

	course := models.Course{
		UserID:             assessment.UserID,
		Topic:              assessment.Topic,
		Level:              levelForScore(*assessment.Score),
		Modules:            modules,
		Weaknesses:         assessment.Weaknesses,
		AssessmentScore:    *assessment.Score,
		CurrentModuleIndex: 0,
		Progress:           0,
	}

	if err := s.db.Create(&course).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	s.log.Info("roadmap planned", "course_id", course.ID, "user_id", course.UserID, "level", course.Level)
	return &course, nil
}

func levelForScore(score int) string {
	switch {
	case score >= 70:
		return models.LevelAdvanced
	case score >= 40:
		return models.LevelIntermediate
	default:
		return models.LevelBeginner
	}
}
