package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Latesh-31/Adaptlearn/internal/apperr"
	"github.com/Latesh-31/Adaptlearn/internal/cache"
	"github.com/Latesh-31/Adaptlearn/internal/llm"
	"github.com/Latesh-31/Adaptlearn/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAssessmentService(t *testing.T, oracle llm.Provider, ttl time.Duration) (*AssessmentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAssessmentService(db, oracle, cache.NewMemoryPending(), testLogger(), ttl)
	return svc, db
}

func TestGenerateQuiz(t *testing.T) {
	oracle := llm.NewMockProvider(llm.MockResponse{Content: "```json\n" + quizJSON() + "\n```"})
	svc, db := newAssessmentService(t, oracle, time.Hour)
	user := seedUser(t, db, "gen@example.com")

	result, err := svc.GenerateQuiz(context.Background(), user.ID, "  Linear Algebra  ")
	require.NoError(t, err)

	assert.Equal(t, "Linear Algebra", result.Topic)
	require.Len(t, result.Questions, QuestionCount)
	for _, q := range result.Questions {
		assert.NotZero(t, q.ID)
		assert.Len(t, q.Options, OptionCount)
	}

	// The client payload must not leak answers in any form.
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "correctAnswer")
	assert.NotContains(t, string(raw), "correct_answer")

	var stored []models.Question
	require.NoError(t, db.Where("assessment_id = ?", result.AssessmentID).Order("order_num").Find(&stored).Error)
	require.Len(t, stored, QuestionCount)
	assert.Equal(t, "A1", stored[0].CorrectAnswer)
}

func TestGenerateQuizRequiresTopic(t *testing.T) {
	oracle := llm.NewMockProvider()
	svc, db := newAssessmentService(t, oracle, time.Hour)
	user := seedUser(t, db, "topic@example.com")

	_, err := svc.GenerateQuiz(context.Background(), user.ID, "   ")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	assert.Zero(t, oracle.CallCount())
}

func TestGenerateQuizRejectsBadPayloads(t *testing.T) {
	fourQuestions := `{"questions": [
		{"question": "Q1?", "options": ["A", "B", "C", "D"], "correctAnswer": "A"},
		{"question": "Q2?", "options": ["A", "B", "C", "D"], "correctAnswer": "A"},
		{"question": "Q3?", "options": ["A", "B", "C", "D"], "correctAnswer": "A"},
		{"question": "Q4?", "options": ["A", "B", "C", "D"], "correctAnswer": "A"}
	]}`
	badAnswer := `{"questions": [
		{"question": "Q1?", "options": ["A", "B", "C", "D"], "correctAnswer": "E"},
		{"question": "Q2?", "options": ["A", "B", "C", "D"], "correctAnswer": "A"},
		{"question": "Q3?", "options": ["A", "B", "C", "D"], "correctAnswer": "A"},
		{"question": "Q4?", "options": ["A", "B", "C", "D"], "correctAnswer": "A"},
		{"question": "Q5?", "options": ["A", "B", "C", "D"], "correctAnswer": "A"}
	]}`

	cases := []struct {
		name    string
		content string
	}{
		{"malformed JSON", "here is your quiz: not json"},
		{"wrong question count", fourQuestions},
		{"answer not among options", badAnswer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			oracle := llm.NewMockProvider(llm.MockResponse{Content: tc.content})
			svc, db := newAssessmentService(t, oracle, time.Hour)
			user := seedUser(t, db, "bad@example.com")

			_, err := svc.GenerateQuiz(context.Background(), user.ID, "Chemistry")
			assert.True(t, apperr.HasCode(err, apperr.CodeAIFormat), "got %v", err)

			var count int64
			db.Model(&models.Assessment{}).Count(&count)
			assert.Zero(t, count, "rejected quiz must not be persisted")
		})
	}
}

func TestGradeQuiz(t *testing.T) {
	oracle := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON()},
		llm.MockResponse{Content: analysisJSON()},
	)
	svc, db := newAssessmentService(t, oracle, time.Hour)
	user := seedUser(t, db, "grade@example.com")

	quiz, err := svc.GenerateQuiz(context.Background(), user.ID, "Linear Algebra")
	require.NoError(t, err)

	// One wrong answer out of five.
	answers := []string{"A1", "A2", "B3", "A4", "A5"}
	graded, err := svc.GradeQuiz(context.Background(), user.ID, quiz.AssessmentID, answers)
	require.NoError(t, err)

	require.NotNil(t, graded.Score)
	assert.Equal(t, 80, *graded.Score)
	assert.Equal(t, "Struggles with the basics.", graded.Analysis)
	assert.Equal(t, []string{"vectors", "matrix multiplication"}, []string(graded.Weaknesses))
	require.NotNil(t, graded.CompletedAt)

	var stored []models.Question
	require.NoError(t, db.Where("assessment_id = ?", quiz.AssessmentID).Order("order_num").Find(&stored).Error)
	require.NotNil(t, stored[2].IsCorrect)
	assert.False(t, *stored[2].IsCorrect)
	assert.Equal(t, "B3", stored[2].UserAnswer)
	require.NotNil(t, stored[0].IsCorrect)
	assert.True(t, *stored[0].IsCorrect)
}

func TestGradeQuizOnlyOnce(t *testing.T) {
	oracle := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON()},
		llm.MockResponse{Content: analysisJSON()},
	)
	svc, db := newAssessmentService(t, oracle, time.Hour)
	user := seedUser(t, db, "once@example.com")

	quiz, err := svc.GenerateQuiz(context.Background(), user.ID, "Linear Algebra")
	require.NoError(t, err)

	answers := []string{"A1", "A2", "A3", "A4", "A5"}
	_, err = svc.GradeQuiz(context.Background(), user.ID, quiz.AssessmentID, answers)
	require.NoError(t, err)

	_, err = svc.GradeQuiz(context.Background(), user.ID, quiz.AssessmentID, answers)
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidState))
}

func TestGradeQuizAnswerCountMismatch(t *testing.T) {
	oracle := llm.NewMockProvider(llm.MockResponse{Content: quizJSON()})
	svc, db := newAssessmentService(t, oracle, time.Hour)
	user := seedUser(t, db, "count@example.com")

	quiz, err := svc.GenerateQuiz(context.Background(), user.ID, "Physics")
	require.NoError(t, err)

	_, err = svc.GradeQuiz(context.Background(), user.ID, quiz.AssessmentID, []string{"A1", "A2"})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestGradeQuizOwnership(t *testing.T) {
	oracle := llm.NewMockProvider(llm.MockResponse{Content: quizJSON()})
	svc, db := newAssessmentService(t, oracle, time.Hour)
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	quiz, err := svc.GenerateQuiz(context.Background(), owner.ID, "Physics")
	require.NoError(t, err)

	answers := []string{"A1", "A2", "A3", "A4", "A5"}
	_, err = svc.GradeQuiz(context.Background(), other.ID, quiz.AssessmentID, answers)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))

	_, err = svc.GradeQuiz(context.Background(), owner.ID, 9999, answers)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestGradeQuizExpiredWindow(t *testing.T) {
	oracle := llm.NewMockProvider(llm.MockResponse{Content: quizJSON()})
	svc, db := newAssessmentService(t, oracle, -time.Minute)
	user := seedUser(t, db, "expired@example.com")

	quiz, err := svc.GenerateQuiz(context.Background(), user.ID, "History")
	require.NoError(t, err)

	answers := []string{"A1", "A2", "A3", "A4", "A5"}
	_, err = svc.GradeQuiz(context.Background(), user.ID, quiz.AssessmentID, answers)
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidState))

	// The row survives the expired window; only grading is refused.
	var assessment models.Assessment
	require.NoError(t, db.First(&assessment, quiz.AssessmentID).Error)
	assert.False(t, assessment.Graded())
}

func TestGradeQuizRetryableAfterTransientFailure(t *testing.T) {
	oracle := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON()},
		llm.MockResponse{Content: analysisJSON()},
		llm.MockResponse{Content: analysisJSON()},
	)
	svc, db := newAssessmentService(t, oracle, time.Hour)
	user := seedUser(t, db, "retry@example.com")

	quiz, err := svc.GenerateQuiz(context.Background(), user.ID, "Linear Algebra")
	require.NoError(t, err)

	// Fail the grade transaction once, after the window has been claimed.
	failed := false
	require.NoError(t, db.Callback().Update().Before("gorm:update").Register("fail_grade_once", func(tx *gorm.DB) {
		if failed || tx.Statement.Table != "assessments" {
			return
		}
		failed = true
		tx.AddError(errors.New("connection reset by peer"))
	}))
	defer db.Callback().Update().Remove("fail_grade_once")

	answers := []string{"A1", "A2", "A3", "A4", "A5"}
	_, err = svc.GradeQuiz(context.Background(), user.ID, quiz.AssessmentID, answers)
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
	require.True(t, failed)

	// The window was handed back, so the retry must still be gradeable.
	graded, err := svc.GradeQuiz(context.Background(), user.ID, quiz.AssessmentID, answers)
	require.NoError(t, err)
	require.NotNil(t, graded.Score)
	assert.Equal(t, 100, *graded.Score)
}

func TestGradeQuizAnalysisFailureStillGrades(t *testing.T) {
	oracle := llm.NewMockProvider(
		llm.MockResponse{Content: quizJSON()},
		llm.MockResponse{Err: &llm.ErrUnavailable{}},
	)
	svc, db := newAssessmentService(t, oracle, time.Hour)
	user := seedUser(t, db, "degrade@example.com")

	quiz, err := svc.GenerateQuiz(context.Background(), user.ID, "Biology")
	require.NoError(t, err)

	answers := []string{"A1", "B2", "B3", "A4", "A5"}
	graded, err := svc.GradeQuiz(context.Background(), user.ID, quiz.AssessmentID, answers)
	require.NoError(t, err)

	require.NotNil(t, graded.Score)
	assert.Equal(t, 60, *graded.Score)
	assert.Empty(t, graded.Analysis)
	assert.Empty(t, graded.Weaknesses)
}
