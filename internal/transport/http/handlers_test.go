package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trivia-quiz-service/internal/achievement"
	"trivia-quiz-service/internal/domain"
	"trivia-quiz-service/internal/powerup"
)

type apiError struct {
	Error errorBody `json:"error"`
}

func do(t *testing.T, server *httptest.Server, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}

func TestQuestionsHideAnswers(t *testing.T) {
	server := newTestServer(t)

	resp, data := do(t, server, http.MethodGet, "/api/questions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, string(data), "correct_option")

	body := decode[struct {
		Questions []domain.QuestionForClient `json:"questions"`
	}](t, data)
	require.Len(t, body.Questions, 2)
	assert.NotEqual(t, body.Questions[0].ID, body.Questions[1].ID)

	_, data = do(t, server, http.MethodGet, "/api/questions?challenge=true", nil)
	challenge := decode[map[string][]domain.QuestionForClient](t, data)
	assert.Len(t, challenge["questions"], 1)
}

func TestCheckAnswer(t *testing.T) {
	server := newTestServer(t)

	resp, data := do(t, server, http.MethodPost, "/api/check-answer", map[string]any{"questionId": 1, "answer": "B"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.AnswerCheck{Correct: true, CorrectAnswer: domain.OptionB}, decode[domain.AnswerCheck](t, data))

	_, data = do(t, server, http.MethodPost, "/api/check-answer", map[string]any{"questionId": 1, "answer": "D"})
	assert.Equal(t, domain.AnswerCheck{Correct: false, CorrectAnswer: domain.OptionB}, decode[domain.AnswerCheck](t, data))
}

func TestCheckAnswerErrors(t *testing.T) {
	server := newTestServer(t)

	cases := []struct {
		name   string
		body   any
		status int
		code   domain.Kind
		field  string
	}{
		{"unknown question", map[string]any{"questionId": 404, "answer": "A"}, http.StatusNotFound, domain.KindNotFound, ""},
		{"missing question", map[string]any{"answer": "A"}, http.StatusBadRequest, domain.KindInvalidInput, "questionId"},
		{"bad label", map[string]any{"questionId": 1, "answer": "E"}, http.StatusBadRequest, domain.KindInvalidInput, "answer"},
		{"unknown question with bad label", map[string]any{"questionId": 99999, "answer": "E"}, http.StatusNotFound, domain.KindNotFound, ""},
		{"malformed", "{", http.StatusBadRequest, domain.KindInvalidInput, "body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, data := do(t, server, http.MethodPost, "/api/check-answer", tc.body)
			assert.Equal(t, tc.status, resp.StatusCode)
			body := decode[apiError](t, data)
			assert.Equal(t, tc.code, body.Error.Code)
			assert.Equal(t, tc.field, body.Error.Field)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestSubmit(t *testing.T) {
	server := newTestServer(t)

	resp, data := do(t, server, http.MethodPost, "/api/submit", map[string]any{
		"answers": map[string]string{"1": "B", "2": "A", "999": "C", "x": "A"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decode[domain.ScoreResult](t, data)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 50, result.Percentage)
	assert.Equal(t, "Getting There", result.Badge.Name)
	assert.Equal(t, "Anonymous", result.UserName)
	require.Len(t, result.Results, 2)
	assert.Equal(t, 1, result.Results[0].QuestionID)
	assert.Equal(t, "Mars", result.Results[1].Options.B)
}

func TestSubmitEmptyAnswers(t *testing.T) {
	server := newTestServer(t)

	resp, data := do(t, server, http.MethodPost, "/api/submit", map[string]any{"answers": map[string]string{}, "userName": "Ada"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	result := decode[domain.ScoreResult](t, data)
	assert.Zero(t, result.Score)
	assert.Zero(t, result.TotalQuestions)
	assert.Zero(t, result.Percentage)
	assert.Equal(t, "Keep Trying", result.Badge.Name)
	assert.Equal(t, "Ada", result.UserName)
	assert.NotNil(t, result.Results)
}

func TestSubmitRejectsBadAnswers(t *testing.T) {
	server := newTestServer(t)

	for _, body := range []any{
		map[string]any{"userName": "Ada"},
		map[string]any{"answers": nil},
		map[string]any{"answers": []string{"A"}},
		map[string]any{"answers": "A"},
	} {
		resp, data := do(t, server, http.MethodPost, "/api/submit", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "answers", decode[apiError](t, data).Error.Field)
	}
}

func TestUsePowerUp(t *testing.T) {
	server := newTestServer(t)

	resp, data := do(t, server, http.MethodPost, "/api/power-ups/use", map[string]any{
		"powerUpId":  "fiftyFifty",
		"questionId": 1,
		"inventory":  powerup.Default(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var use struct {
		Applied   bool                    `json:"applied"`
		Inventory domain.PowerUpInventory `json:"inventory"`
		Effect    powerup.Effect          `json:"effect"`
	}
	require.NoError(t, json.Unmarshal(data, &use))
	assert.True(t, use.Applied)
	assert.Equal(t, []domain.Option{domain.OptionA, domain.OptionC}, use.Effect.Eliminated)
	assert.Equal(t, 1, use.Inventory.UsedThisQuiz.FiftyFifty)
	assert.Equal(t, 3, use.Inventory.FiftyFifty)
	assert.NotContains(t, string(data), `"answer"`)
}

func TestUsePowerUpWhenExhausted(t *testing.T) {
	server := newTestServer(t)

	inv := powerup.Default()
	inv.UsedThisQuiz.SkipQuestion = 1
	resp, data := do(t, server, http.MethodPost, "/api/power-ups/use", map[string]any{
		"powerUpId":  "skipQuestion",
		"questionId": 2,
		"inventory":  inv,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(data), `"applied":false`)

	resp, data = do(t, server, http.MethodPost, "/api/power-ups/use", map[string]any{
		"powerUpId":  "teleport",
		"questionId": 2,
		"inventory":  inv,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "powerUpId", decode[apiError](t, data).Error.Field)
}

func TestResetPowerUps(t *testing.T) {
	server := newTestServer(t)

	inv := domain.PowerUpInventory{
		PowerUpCounts: domain.PowerUpCounts{FiftyFifty: 5},
		UsedThisQuiz:  domain.PowerUpCounts{FiftyFifty: 2, ExtraTime: 1},
	}
	_, data := do(t, server, http.MethodPost, "/api/power-ups/reset", map[string]any{"inventory": inv})
	got := decode[map[string]domain.PowerUpInventory](t, data)["inventory"]
	assert.Equal(t, 5, got.FiftyFifty)
	assert.Equal(t, domain.PowerUpCounts{}, got.UsedThisQuiz)

	_, data = do(t, server, http.MethodPost, "/api/power-ups/reset", nil)
	got = decode[map[string]domain.PowerUpInventory](t, data)["inventory"]
	assert.Equal(t, powerup.Default(), got)
}

func TestCatalogEndpoints(t *testing.T) {
	server := newTestServer(t)

	_, data := do(t, server, http.MethodGet, "/api/achievements", nil)
	achievements := decode[map[string][]achievement.Achievement](t, data)["achievements"]
	assert.Len(t, achievements, len(achievement.Catalog()))

	_, data = do(t, server, http.MethodGet, "/api/power-ups", nil)
	assert.Contains(t, string(data), `"maxUses":3`)
}

func TestStatsEndpoints(t *testing.T) {
	server := newTestServer(t)

	_, data := do(t, server, http.MethodPost, "/api/stats/answer", map[string]any{
		"stats":   domain.UserStats{CurrentStreak: 2, MaxStreak: 2},
		"correct": true,
	})
	var update struct {
		Stats           domain.UserStats          `json:"stats"`
		NewAchievements []achievement.Achievement `json:"newAchievements"`
	}
	require.NoError(t, json.Unmarshal(data, &update))
	assert.Equal(t, 3, update.Stats.CurrentStreak)
	require.Len(t, update.NewAchievements, 1)
	assert.Equal(t, "streak_3", update.NewAchievements[0].ID)
	assert.Equal(t, []string{"streak_3"}, update.Stats.Achievements)

	_, data = do(t, server, http.MethodPost, "/api/stats/quiz", map[string]any{
		"stats":          domain.UserStats{},
		"score":          10,
		"totalQuestions": 10,
		"elapsedSeconds": 100,
	})
	require.NoError(t, json.Unmarshal(data, &update))
	assert.Equal(t, 1, update.Stats.PerfectScores)
	assert.Equal(t, []string{"first_quiz", "perfect_score", "speed_demon"}, update.Stats.Achievements)

	resp, _ := do(t, server, http.MethodPost, "/api/stats/answer", map[string]any{"stats": domain.UserStats{}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, server, http.MethodPost, "/api/stats/quiz", map[string]any{"score": 5, "totalQuestions": 2})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRecordQuizDerivesPercentage(t *testing.T) {
	server := newTestServer(t)

	resp, data := do(t, server, http.MethodPost, "/api/stats/quiz", map[string]any{
		"stats":          domain.UserStats{},
		"score":          3,
		"totalQuestions": 10,
		"percentage":     100,
		"elapsedSeconds": 100,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "percentage", decode[apiError](t, data).Error.Field)

	resp, data = do(t, server, http.MethodPost, "/api/stats/quiz", map[string]any{
		"stats":          domain.UserStats{},
		"score":          3,
		"totalQuestions": 10,
		"percentage":     30,
		"elapsedSeconds": 100,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var update struct {
		Stats domain.UserStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(data, &update))
	assert.Equal(t, 0, update.Stats.PerfectScores)
	assert.Equal(t, 3, update.Stats.TotalCorrect)
}

func TestDailyChallenge(t *testing.T) {
	server := newTestServer(t)

	_, data := do(t, server, http.MethodGet, "/api/daily-challenge", nil)
	today := decode[domain.DailyChallenge](t, data)
	assert.Equal(t, "daily-2025-01-01", today.ID)
	assert.Equal(t, "History", today.Theme)
	assert.False(t, today.Completed)

	_, data = do(t, server, http.MethodGet, "/api/daily-challenge?date=2025-01-05&completed=daily-2025-01-05", nil)
	other := decode[domain.DailyChallenge](t, data)
	assert.Equal(t, domain.DifficultyHard, other.Difficulty)
	assert.True(t, other.Completed)

	resp, data := do(t, server, http.MethodGet, "/api/daily-challenge?date=01/05/2025", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "date", decode[apiError](t, data).Error.Field)
}

func TestChallengeHistory(t *testing.T) {
	server := newTestServer(t)

	_, data := do(t, server, http.MethodGet, "/api/daily-challenge/history", nil)
	history := decode[map[string][]domain.DailyChallenge](t, data)["challenges"]
	require.Len(t, history, 7)
	assert.Equal(t, "daily-2025-01-01", history[0].ID)
	assert.Equal(t, "daily-2024-12-26", history[6].ID)

	_, data = do(t, server, http.MethodGet, "/api/daily-challenge/history?days=2&completed=daily-2024-12-31", nil)
	history = decode[map[string][]domain.DailyChallenge](t, data)["challenges"]
	require.Len(t, history, 2)
	assert.True(t, history[1].Completed)

	for _, days := range []string{"0", "367", "week"} {
		resp, _ := do(t, server, http.MethodGet, "/api/daily-challenge/history?days="+days, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, days)
	}
}

func TestClaimChallenge(t *testing.T) {
	server := newTestServer(t)

	resp, data := do(t, server, http.MethodPost, "/api/daily-challenge/claim", map[string]any{
		"inventory": powerup.Default(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var claim struct {
		Challenge domain.DailyChallenge   `json:"challenge"`
		Inventory domain.PowerUpInventory `json:"inventory"`
	}
	require.NoError(t, json.Unmarshal(data, &claim))
	assert.True(t, claim.Challenge.Completed)
	assert.Equal(t, domain.PowerUpCounts{FiftyFifty: 4, ExtraTime: 3, SkipQuestion: 1}, claim.Inventory.PowerUpCounts)

	resp, _ = do(t, server, http.MethodPost, "/api/daily-challenge/claim", map[string]any{
		"completed": []string{"daily-2025-01-01"},
		"inventory": powerup.Default(),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUnknownRouteAndRequestID(t *testing.T) {
	server := newTestServer(t)

	resp, data := do(t, server, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, domain.KindNotFound, decode[apiError](t, data).Error.Code)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, data = do(t, server, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", string(data))
}

func TestRecoveryMiddleware(t *testing.T) {
	h := loggingMiddleware(recoveryMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[apiError](t, rec.Body.Bytes())
	assert.Equal(t, domain.KindInternal, body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
