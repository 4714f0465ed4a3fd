package services

import (
	"context"
	"strings"

	"github.com/Latesh-31/Adaptlearn/internal/apperr"
	"github.com/Latesh-31/Adaptlearn/internal/llm"
	"github.com/Latesh-31/Adaptlearn/internal/logger"
	"github.com/Latesh-31/Adaptlearn/internal/models"

	"gorm.io/gorm"
)

// TutorService produces module learning content and answers ad-hoc
// questions scoped to a module. Content is generated at most once per
// module; chat is stateless, nothing from a conversation is persisted.
type TutorService struct {
	db     *gorm.DB
	oracle llm.Provider
	log    *logger.Logger
}

func NewTutorService(db *gorm.DB, oracle llm.Provider, log *logger.Logger) *TutorService {
	return &TutorService{db: db, oracle: oracle, log: log}
}

// GenerateModuleContent returns the module's learning content, generating
// and caching it on first access. Locked modules are rejected so content
// can only be read in roadmap order.
func (s *TutorService) GenerateModuleContent(ctx context.Context, userID, courseID, moduleID uint) (*models.Module, error) {
	course, err := loadCourse(s.db, courseID, userID)
	if err != nil {
		return nil, err
	}
	module := findModule(course, moduleID)
	if module == nil {
		return nil, apperr.NotFound("module not found")
	}
	if module.Status == models.ModuleStatusLocked {
		return nil, apperr.InvalidState("module is locked")
	}
	if module.Content != "" {
		return module, nil
	}

	resp, err := s.oracle.Generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: contentPrompt(course.Topic, module.Title, module.Description, course.Weaknesses, course.Level),
		}},
		MaxTokens:   2048,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, apperr.AITransport(err)
	}
	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return nil, apperr.AIFormat("tutor returned empty module content", nil)
	}

	// First writer wins. A concurrent call that lost the race reads the
	// stored content back instead of overwriting it.
	res := s.db.WithContext(ctx).Model(&models.Module{}).
		Where("id = ? AND content = ''", module.ID).
		Update("content", content)
	if res.Error != nil {
		return nil, apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		if err := s.db.WithContext(ctx).First(module, module.ID).Error; err != nil {
			return nil, apperr.Internal(err)
		}
		return module, nil
	}

	module.Content = content
	return module, nil
}

// AskTutor answers a free-form question in the context of a module.
func (s *TutorService) AskTutor(ctx context.Context, userID, courseID, moduleID uint, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", apperr.Validation("question is required")
	}

	course, err := loadCourse(s.db, courseID, userID)
	if err != nil {
		return "", err
	}
	module := findModule(course, moduleID)
	if module == nil {
		return "", apperr.NotFound("module not found")
	}
	if module.Status == models.ModuleStatusLocked {
		return "", apperr.InvalidState("module is locked")
	}

	resp, err := s.oracle.Generate(ctx, llm.Request{
		System: tutorSystemPrompt,
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: tutorPrompt(course.Topic, module.Title, module.Description, course.Weaknesses, question),
		}},
		MaxTokens:   1024,
		Temperature: 0.7,
	})
	if err != nil {
		return "", apperr.AITransport(err)
	}
	answer := strings.TrimSpace(resp.Content)
	if answer == "" {
		return "", apperr.AIFormat("tutor returned an empty answer", nil)
	}
	return answer, nil
}
