package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Latesh-31/Adaptlearn/internal/logger"
	"github.com/Latesh-31/Adaptlearn/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database per test. cache=shared
// keeps the database alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Assessment{},
		&models.Question{},
		&models.Course{},
		&models.Module{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     strings.SplitN(email, "@", 2)[0],
		Email:        email,
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func testLogger() *logger.Logger {
	return logger.NewNop()
}

// quizJSON is a well-formed oracle quiz payload. Every correct answer is
// option "A" so tests can steer the score by answer choice.
func quizJSON() string {
	var qs []string
	for i := 1; i <= QuestionCount; i++ {
		qs = append(qs, fmt.Sprintf(`{
			"question": "Question %d?",
			"options": ["A%d", "B%d", "C%d", "D%d"],
			"correctAnswer": "A%d"
		}`, i, i, i, i, i, i))
	}
	return fmt.Sprintf(`{"questions": [%s]}`, strings.Join(qs, ","))
}

func analysisJSON() string {
	return `{"analysis": "Struggles with the basics.", "weaknesses": ["vectors", "matrix multiplication"]}`
}

func syllabusJSON(n int) string {
	var ms []string
	for i := 1; i <= n; i++ {
		ms = append(ms, fmt.Sprintf(`{"title": "Module %d", "description": "Covers part %d of the topic."}`, i, i))
	}
	return fmt.Sprintf(`{"modules": [%s]}`, strings.Join(ms, ","))
}
