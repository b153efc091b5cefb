package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/progclub/potd/internal/auth"
	"github.com/progclub/potd/internal/config"
	"github.com/progclub/potd/internal/database/models"
)

func setupAdmin(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.DailyProblem{}, &models.Submission{}))

	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)

	cfg := &config.Config{
		Admin: config.Admin{
			Enabled:      true,
			Username:     "admin",
			PasswordHash: hash,
			JWT:          config.JWT{Secret: "test-secret", ExpireHours: 1},
		},
	}
	return NewRouter(cfg, db), db
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "admin", "password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])
	return body["token"]
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := setupAdmin(t)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "admin", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "root", "password": "hunter2",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProblemRoutesRequireAuth(t *testing.T) {
	r, _ := setupAdmin(t)

	w := doJSON(r, http.MethodGet, "/api/v1/problems", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/problems", "garbage-token", map[string]interface{}{
		"cfContestId": 1500, "cfIndex": "A", "title": "x",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndListProblems(t *testing.T) {
	r, db := setupAdmin(t)
	token := loginToken(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/problems", token, map[string]interface{}{
		"cfContestId": 1500,
		"cfIndex":     "A",
		"title":       "Watermelon",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.DailyProblem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.WithinDuration(t, time.Now(), created.PostedAt, 5*time.Second)

	// Scheduled problem with an explicit future posting time.
	future := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	w = doJSON(r, http.MethodPost, "/api/v1/problems", token, map[string]interface{}{
		"cfContestId": 1600,
		"cfIndex":     "B",
		"title":       "Tomorrow",
		"postedAt":    future.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.DailyProblem{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// Admin listing includes the scheduled problem, newest first.
	w = doJSON(r, http.MethodGet, "/api/v1/problems", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var problems []models.DailyProblem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problems))
	require.Len(t, problems, 2)
	assert.Equal(t, "Tomorrow", problems[0].Title)
}

func TestCreateProblemValidation(t *testing.T) {
	r, _ := setupAdmin(t)
	token := loginToken(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/problems", token, map[string]interface{}{
		"cfIndex": "A",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
