package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ariven/dermalens-v2/backend/config"
	"github.com/ariven/dermalens-v2/backend/internal/database"
	"github.com/ariven/dermalens-v2/backend/internal/engine"
	"github.com/ariven/dermalens-v2/backend/internal/server"
	"github.com/ariven/dermalens-v2/backend/internal/service"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	store, err := engine.DefaultReferenceDataStore()
	require.NoError(t, err)

	logger := zap.NewNop()
	profiles := service.NewProfileService(db)

	deps := server.Deps{
		Auth:            service.NewAuthService(db, "test-secret", 24),
		Profiles:        profiles,
		Products:        service.NewProductService(db),
		Scans:           service.NewScanService(db, nil, profiles, store, logger),
		Recommendations: service.NewRecommendationService(db, profiles, store, logger),
	}

	cfg := &config.Config{}
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Server.Env = "test"

	return server.New(cfg, db, deps, logger)
}

func doJSON(t *testing.T, srv *server.Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, srv *server.Server) string {
	t.Helper()
	w := doJSON(t, srv, "POST", "/api/v1/auth/register", "", map[string]any{
		"name":     "Ada",
		"username": "ada",
		"email":    "ada@example.com",
		"password": "correct-horse",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	srv := newTestServer(t)
	w := doJSON(t, srv, "GET", "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestScanFlow(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv)

	w := doJSON(t, srv, "PUT", "/api/v1/profile", token, map[string]any{
		"skin_type": "sensitive",
		"allergens": []string{"shea"},
		"concerns":  []string{"acne"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, srv, "POST", "/api/v1/scans", token, map[string]any{
		"product_name":    "Rich Cream",
		"ingredient_text": "water, shea butter extract, fragrance",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var scan struct {
		ID        string `json:"id"`
		Allergens struct {
			OverallLevel         string `json:"overall_level"`
			PatchTestRecommended bool   `json:"patch_test_recommended"`
		} `json:"allergens"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scan))
	assert.Equal(t, "high", scan.Allergens.OverallLevel)
	assert.True(t, scan.Allergens.PatchTestRecommended)

	w = doJSON(t, srv, "GET", fmt.Sprintf("/api/v1/scans/%s", scan.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, srv, "GET", "/api/v1/scans", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecommendationFlow(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv)

	w := doJSON(t, srv, "PUT", "/api/v1/profile", token, map[string]any{
		"concerns": []string{"acne"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, srv, "POST", "/api/v1/products", token, map[string]any{
		"name":            "Clarifying Serum",
		"category":        "serum",
		"ingredient_text": "salicylic acid, niacinamide, water",
		"price":           32,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, srv, "GET", "/api/v1/recommendations", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Recommendations []struct {
			Product struct {
				Name string `json:"name"`
			} `json:"product"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "Clarifying Serum", resp.Recommendations[0].Product.Name)
}

func TestRoutineAuditFlow(t *testing.T) {
	srv := newTestServer(t)
	token := registerUser(t, srv)

	w := doJSON(t, srv, "POST", "/api/v1/routine", token, map[string]any{
		"product_name":    "Night Serum",
		"ingredient_text": "retinol, squalane",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, srv, "POST", "/api/v1/routine/audit", token, map[string]any{
		"ingredient_text": "vitamin c, water",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Conflicts []struct {
			Severity string `json:"severity"`
		} `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "medium", resp.Conflicts[0].Severity)
}
