package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/creative-copilot/backend/internal/auth"
	"github.com/creative-copilot/backend/internal/briefparser"
	"github.com/creative-copilot/backend/internal/catalog"
	"github.com/creative-copilot/backend/internal/config"
	"github.com/creative-copilot/backend/internal/engine"
	"github.com/creative-copilot/backend/internal/http/handlers"
	"github.com/creative-copilot/backend/internal/models"
	"github.com/creative-copilot/backend/internal/repositories"
	"github.com/creative-copilot/backend/internal/responder"
	"github.com/creative-copilot/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type memStore struct {
	mu        sync.Mutex
	campaigns map[uuid.UUID]models.Campaign
}

func (m *memStore) Create(_ context.Context, c *models.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.campaigns[c.ID] = *c
	return nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*models.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[id]
	if !ok {
		return nil, repositories.ErrCampaignNotFound
	}
	return &c, nil
}

func (m *memStore) UpdateArtifacts(_ context.Context, c *models.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.campaigns[c.ID] = *c
	return nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.campaigns, id)
	return nil
}

func (m *memStore) List(_ context.Context, f repositories.CampaignFilter) ([]models.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Campaign
	for _, c := range m.campaigns {
		if f.UserID != nil && c.UserID != *f.UserID {
			continue
		}
		if f.Goal != nil && c.Brief.Goal != *f.Goal {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type memChat struct {
	mu   sync.Mutex
	msgs map[uuid.UUID][]models.ChatMessage
}

func (m *memChat) Append(_ context.Context, id uuid.UUID, msgs ...models.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs[id] = append(m.msgs[id], msgs...)
	return nil
}

func (m *memChat) History(_ context.Context, id uuid.UUID) ([]models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ChatMessage(nil), m.msgs[id]...), nil
}

type stubExtractor struct {
	ex  *briefparser.Extraction
	err error
}

func (s stubExtractor) FetchAndExtract(context.Context, string) (*briefparser.Extraction, error) {
	return s.ex, s.err
}

func newTestApp(t *testing.T, extractor handlers.BriefExtractor) *fiber.App {
	t.Helper()
	log := zap.NewNop()
	cfg := &config.Config{JWTSecret: testSecret, JWTExpiration: time.Hour, RateLimitPerMinute: 60}

	gen := engine.NewGenerator(catalog.All(), engine.DefaultMaxTemplates, log)
	campaignSvc := services.NewCampaignService(gen, &memStore{campaigns: map[uuid.UUID]models.Campaign{}}, nil, nil, log)
	chatSvc := services.NewChatService(&memChat{msgs: map[uuid.UUID][]models.ChatMessage{}}, nil, log)

	app := fiber.New()
	SetupRouter(app, cfg, log, nil, Handlers{
		Auth:     handlers.NewAuthHandler(cfg.JWTSecret, cfg.JWTExpiration, log),
		Meta:     handlers.NewMetaHandler(catalog.All()),
		Generate: handlers.NewGenerateHandler(campaignSvc, log),
		Campaign: handlers.NewCampaignHandler(campaignSvc, log),
		Chat:     handlers.NewChatHandler(chatSvc, log),
		Brief:    handlers.NewBriefHandler(extractor, log),
	})
	return app
}

type envelope struct {
	OK        bool            `json:"ok"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	RequestID string          `json:"request_id"`
}

func do(t *testing.T, app *fiber.App, method, target, token string, body any) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp.StatusCode, env
}

func salesBrief() map[string]any {
	return map[string]any{
		"product_name":        "FitPro",
		"product_description": "Smart fitness tracker. Tracks sleep. Waterproof.",
		"target_audience":     "runners",
		"goal":                "sales",
		"tone":                "Bold",
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, stubExtractor{})
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMetaEndpoints(t *testing.T) {
	app := newTestApp(t, stubExtractor{})

	status, env := do(t, app, "GET", "/api/v1/meta/goals", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	var goals []map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &goals))
	require.Len(t, goals, 4)
	assert.Equal(t, "Lead Generation", goals[3]["label"])

	status, env = do(t, app, "GET", "/api/v1/meta/templates", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	var templates []models.Template
	require.NoError(t, json.Unmarshal(env.Data, &templates))
	assert.Len(t, templates, len(catalog.All()))

	for _, path := range []string{"/api/v1/meta/tones", "/api/v1/meta/platforms", "/api/v1/meta/categories"} {
		status, _ := do(t, app, "GET", path, "", nil)
		assert.Equal(t, fiber.StatusOK, status, path)
	}
}

func TestGenerate(t *testing.T) {
	app := newTestApp(t, stubExtractor{})

	status, env := do(t, app, "POST", "/api/v1/generate", "", map[string]any{"brief": salesBrief(), "seed": 5})
	require.Equal(t, fiber.StatusOK, status, env.Error)

	var res struct {
		Seed       uint64                     `json:"seed"`
		Categories []string                   `json:"categories"`
		Artifacts  []models.GeneratedArtifact `json:"artifacts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, uint64(5), res.Seed)
	assert.Equal(t, []string{"health"}, res.Categories)
	require.Len(t, res.Artifacts, 3)
	assert.Equal(t, "BUY FITPRO NOW", res.Artifacts[0].Headline)

	// same seed, same copy
	_, again := do(t, app, "POST", "/api/v1/generate", "", map[string]any{"brief": salesBrief(), "seed": 5})
	assert.JSONEq(t, string(env.Data), string(again.Data))
}

func TestGenerate_HugeMaxTemplates(t *testing.T) {
	app := newTestApp(t, stubExtractor{})

	status, env := do(t, app, "POST", "/api/v1/generate", "", map[string]any{
		"brief": salesBrief(), "max_templates": math.MaxInt32,
	})
	require.Equal(t, fiber.StatusOK, status, env.Error)

	var res struct {
		Artifacts []models.GeneratedArtifact `json:"artifacts"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Len(t, res.Artifacts, 3)
}

func TestGenerate_BadRequests(t *testing.T) {
	app := newTestApp(t, stubExtractor{})

	blank := salesBrief()
	blank["product_name"] = "  "
	badGoal := salesBrief()
	badGoal["goal"] = "world domination"

	tests := []struct {
		name string
		body any
	}{
		{"blank product name", map[string]any{"brief": blank}},
		{"unknown goal", map[string]any{"brief": badGoal}},
		{"unknown template", map[string]any{"brief": salesBrief(), "template_ids": []string{"nope"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, app, "POST", "/api/v1/generate", "", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.NotEmpty(t, env.Error)
			assert.NotEmpty(t, env.RequestID)
		})
	}
}

func guestToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, raw := doRaw(t, app, "POST", "/api/v1/auth/guest")
	require.Equal(t, fiber.StatusCreated, status)
	var tok struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &tok))
	return tok.Token
}

func doRaw(t *testing.T, app *fiber.App, method, target string) (int, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestCampaignLifecycle(t *testing.T) {
	app := newTestApp(t, stubExtractor{})
	token := guestToken(t, app)

	status, _ := do(t, app, "GET", "/api/v1/campaigns", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, env := do(t, app, "POST", "/api/v1/campaigns", token, map[string]any{"brief": salesBrief(), "seed": 1})
	require.Equal(t, fiber.StatusCreated, status, env.Error)
	var created models.Campaign
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, uint64(1), created.Seed)

	status, env = do(t, app, "GET", "/api/v1/campaigns", token, nil)
	require.Equal(t, fiber.StatusOK, status)
	var list []models.Campaign
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	status, env = do(t, app, "POST", "/api/v1/campaigns/"+created.ID.String()+"/regenerate", token, map[string]any{"seed": 2})
	require.Equal(t, fiber.StatusOK, status, env.Error)
	var regenerated models.Campaign
	require.NoError(t, json.Unmarshal(env.Data, &regenerated))
	assert.Equal(t, uint64(2), regenerated.Seed)
	assert.Len(t, regenerated.Artifacts, len(created.Artifacts))

	// no audit store wired in this app
	status, _ = do(t, app, "GET", "/api/v1/campaigns/"+created.ID.String()+"/audit", token, nil)
	assert.Equal(t, fiber.StatusNotImplemented, status)

	other := guestToken(t, app)
	status, _ = do(t, app, "GET", "/api/v1/campaigns/"+created.ID.String(), other, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, "DELETE", "/api/v1/campaigns/"+created.ID.String(), token, nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, "GET", "/api/v1/campaigns/"+created.ID.String(), token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, "GET", "/api/v1/campaigns/not-a-uuid", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCampaignList_InvalidGoal(t *testing.T) {
	app := newTestApp(t, stubExtractor{})
	token, err := auth.GenerateJWT(testSecret, uuid.New(), time.Hour)
	require.NoError(t, err)

	status, _ := do(t, app, "GET", "/api/v1/campaigns?goal=nope", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestChat(t *testing.T) {
	app := newTestApp(t, stubExtractor{})

	status, env := do(t, app, "POST", "/api/v1/chat", "", map[string]any{"content": "my restaurant"})
	require.Equal(t, fiber.StatusOK, status, env.Error)
	var reply services.ChatReply
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, responder.BucketFood, reply.Bucket)
	assert.Contains(t, reply.Message.Content, "my restaurant")

	status, env = do(t, app, "GET", "/api/v1/chat/"+reply.SessionID.String(), "", nil)
	require.Equal(t, fiber.StatusOK, status)
	var transcript struct {
		Messages []models.ChatMessage `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &transcript))
	require.Len(t, transcript.Messages, 3)
	assert.Equal(t, responder.Greeting, transcript.Messages[0].Content)

	status, _ = do(t, app, "POST", "/api/v1/chat", "", map[string]any{"session_id": "bad", "content": "x"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestExtractBrief(t *testing.T) {
	ex := &briefparser.Extraction{ProductName: "Brewly", Description: "Coffee at home.", Categories: []string{}}
	app := newTestApp(t, stubExtractor{ex: ex})

	status, env := do(t, app, "POST", "/api/v1/briefs/extract", "", map[string]any{
		"url": "https://brewly.example", "goal": "awareness", "tone": "casual",
	})
	require.Equal(t, fiber.StatusOK, status, env.Error)
	var res struct {
		Brief *models.CampaignBrief `json:"brief"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.NotNil(t, res.Brief)
	assert.Equal(t, "Brewly", res.Brief.ProductName)
	assert.Equal(t, models.GoalAwareness, res.Brief.Goal)

	status, _ = do(t, app, "POST", "/api/v1/briefs/extract", "", map[string]any{})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestExtractBrief_UpstreamFailure(t *testing.T) {
	app := newTestApp(t, stubExtractor{err: errors.New("HTTP 500")})

	status, _ := do(t, app, "POST", "/api/v1/briefs/extract", "", map[string]any{"url": "https://x.example"})
	assert.Equal(t, fiber.StatusBadGateway, status)

	app = newTestApp(t, stubExtractor{err: briefparser.ErrInvalidURL})
	status, _ = do(t, app, "POST", "/api/v1/briefs/extract", "", map[string]any{"url": "ftp://x"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}
