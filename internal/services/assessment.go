package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Latesh-31/Adaptlearn/internal/apperr"
	"github.com/Latesh-31/Adaptlearn/internal/cache"
	"github.com/Latesh-31/Adaptlearn/internal/llm"
	"github.com/Latesh-31/Adaptlearn/internal/logger"
	"github.com/Latesh-31/Adaptlearn/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// QuestionCount is the fixed size of a diagnostic quiz.
	QuestionCount = 5
	// OptionCount is the fixed number of options per question.
	OptionCount = 4
)

type AssessmentService struct {
	db      *gorm.DB
	oracle  llm.Provider
	pending cache.PendingAssessments
	log     *logger.Logger
	ttl     time.Duration
}

func NewAssessmentService(db *gorm.DB, oracle llm.Provider, pending cache.PendingAssessments, log *logger.Logger, ttl time.Duration) *AssessmentService {
	return &AssessmentService{db: db, oracle: oracle, pending: pending, log: log, ttl: ttl}
}

// GeneratedQuestion is the client-facing view of a question. It carries
// no correct answer by construction.
type GeneratedQuestion struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

type QuizResult struct {
	AssessmentID uint                `json:"assessment_id"`
	Topic        string              `json:"topic"`
	Questions    []GeneratedQuestion `json:"questions"`
}

type quizPayload struct {
	Questions []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correctAnswer"`
	} `json:"questions"`
}

// GenerateQuiz builds a diagnostic quiz for the topic, persists it with
// the correct answers server-side, and opens the grading window.
func (s *AssessmentService) GenerateQuiz(ctx context.Context, userID uint, topic string) (*QuizResult, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, apperr.Validation("topic is required")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, apperr.NotFound("user not found")
	}

	resp, err := s.oracle.Generate(ctx, llm.Request{
		System:      quizSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: quizPrompt(topic)}},
		MaxTokens:   2048,
		Temperature: 0.7,
		JSONOutput:  true,
	})
	if err != nil {
		return nil, apperr.AITransport(err)
	}

	var payload quizPayload
	if err := json.Unmarshal([]byte(llm.CleanJSON(resp.Content)), &payload); err != nil {
		return nil, apperr.AIFormat("quiz generation returned malformed JSON", err)
	}

	if len(payload.Questions) != QuestionCount {
		return nil, apperr.AIFormat(fmt.Sprintf("expected %d questions, got %d", QuestionCount, len(payload.Questions)), nil)
	}

	questions := make([]models.Question, 0, QuestionCount)
	for i, q := range payload.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, apperr.AIFormat(fmt.Sprintf("question %d has no text", i+1), nil)
		}
		if len(q.Options) != OptionCount {
			return nil, apperr.AIFormat(fmt.Sprintf("question %d has %d options, expected %d", i+1, len(q.Options), OptionCount), nil)
		}
		if !containsOption(q.Options, q.CorrectAnswer) {
			return nil, apperr.AIFormat(fmt.Sprintf("question %d correct answer does not match any option", i+1), nil)
		}
		questions = append(questions, models.Question{
			OrderNum:      i + 1,
			Text:          q.Question,
			Options:       datatypes.JSONSlice[string](q.Options),
			CorrectAnswer: q.CorrectAnswer,
		})
	}

	assessment := models.Assessment{
		UserID:    userID,
		Topic:     topic,
		Questions: questions,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&assessment).Error; err != nil {
			return err
		}
		if err := s.pending.Open(ctx, assessment.ID, s.ttl); err != nil {
			return fmt.Errorf("open grading window: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	s.log.Info("quiz generated", "assessment_id", assessment.ID, "user_id", userID, "topic", topic)

	result := &QuizResult{AssessmentID: assessment.ID, Topic: topic}
	for _, q := range assessment.Questions {
		result.Questions = append(result.Questions, GeneratedQuestion{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
		})
	}
	return result, nil
}

type analysisPayload struct {
	Analysis   string   `json:"analysis"`
	Weaknesses []string `json:"weaknesses"`
}

// GradeQuiz grades the answers positionally against the stored correct
// answers, derives a weakness summary, and persists the graded assessment
// exactly once. The weakness-analysis step degrades to empty output on
// oracle failure: the numeric grade is locally computable and always wins.
func (s *AssessmentService) GradeQuiz(ctx context.Context, userID, assessmentID uint, answers []string) (*models.Assessment, error) {
	var assessment models.Assessment
	err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_num ASC")
	}).First(&assessment, assessmentID).Error
	if err != nil {
		return nil, apperr.NotFound("assessment not found")
	}

	if assessment.UserID != userID {
		return nil, apperr.Unauthorized("access denied")
	}
	if assessment.Graded() {
		return nil, apperr.InvalidState("assessment already graded")
	}
	if len(answers) != len(assessment.Questions) {
		return nil, apperr.Validation(fmt.Sprintf("expected %d answers, got %d", len(assessment.Questions), len(answers)))
	}

	claimed, err := s.pending.Claim(ctx, assessmentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !claimed {
		return nil, apperr.InvalidState("assessment grading window has expired")
	}

	correct := 0
	var wrong []wrongAnswer
	for i := range assessment.Questions {
		q := &assessment.Questions[i]
		q.UserAnswer = answers[i]
		isCorrect := q.UserAnswer == q.CorrectAnswer
		q.IsCorrect = &isCorrect
		if isCorrect {
			correct++
		} else {
			wrong = append(wrong, wrongAnswer{
				Question:      q.Text,
				UserAnswer:    q.UserAnswer,
				CorrectAnswer: q.CorrectAnswer,
			})
		}
	}

	score := int(math.Round(100 * float64(correct) / float64(len(assessment.Questions))))

	analysis, weaknesses := s.analyzeWeaknesses(ctx, assessment.Topic, score, wrong)

	now := time.Now()
	assessment.Score = &score
	assessment.Analysis = analysis
	assessment.Weaknesses = datatypes.JSONSlice[string](weaknesses)
	assessment.CompletedAt = &now

	err = s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Assessment{}).
			Where("id = ? AND completed_at IS NULL", assessment.ID).
			Updates(map[string]interface{}{
				"score":        score,
				"analysis":     analysis,
				"weaknesses":   assessment.Weaknesses,
				"completed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.InvalidState("assessment already graded")
		}
		for _, q := range assessment.Questions {
			if err := tx.Model(&models.Question{}).Where("id = ?", q.ID).
				Updates(map[string]interface{}{
					"user_answer": q.UserAnswer,
					"is_correct":  q.IsCorrect,
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// The claim consumed the pending marker. A transient failure must
		// not burn the window, so give back whatever TTL is left.
		if !apperr.HasCode(err, apperr.CodeInvalidState) {
			if remaining := time.Until(assessment.CreatedAt.Add(s.ttl)); remaining > 0 {
				if oerr := s.pending.Open(ctx, assessment.ID, remaining); oerr != nil {
					s.log.Warn("failed to reopen grading window", "assessment_id", assessment.ID, "error", oerr)
				}
			}
		}
		return nil, apperr.From(err)
	}

	s.log.Info("quiz graded", "assessment_id", assessment.ID, "user_id", userID, "score", score)
	return &assessment, nil
}

// analyzeWeaknesses asks the oracle for an analysis of the wrong answers.
// Any failure here is logged and swallowed: grading must still succeed.
func (s *AssessmentService) analyzeWeaknesses(ctx context.Context, topic string, score int, wrong []wrongAnswer) (string, []string) {
	resp, err := s.oracle.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: analysisPrompt(topic, score, wrong)}},
		MaxTokens:   1024,
		Temperature: 0.7,
		JSONOutput:  true,
	})
	if err != nil {
		s.log.Warn("weakness analysis failed", "topic", topic, "error", err)
		return "", nil
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(llm.CleanJSON(resp.Content)), &payload); err != nil {
		s.log.Warn("weakness analysis returned malformed JSON", "topic", topic, "error", err)
		return "", nil
	}
	return payload.Analysis, payload.Weaknesses
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
