package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fruitstand/backend/config"
	"github.com/fruitstand/backend/internal/middleware"
	"github.com/fruitstand/backend/internal/server"
	"github.com/fruitstand/backend/internal/store"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment:    "test",
		AllowedOrigins: []string{"http://localhost:5173"},
	}
	return server.New(cfg, store.NewMemory(), zap.NewNop()).Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, userID string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
		req.Header.Set(middleware.HeaderUserHandle, userID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createRecipe(t *testing.T, router *gin.Engine, userID string) map[string]interface{} {
	t.Helper()
	w := doJSON(t, router, "POST", "/api/recipes", map[string]interface{}{
		"title":       "Apple Pie",
		"summary":     "Orchard classic",
		"coverUrl":    "https://cdn.example.com/pie.jpg",
		"servings":    8,
		"difficulty":  "Medium",
		"ingredients": []string{"apples", "sugar"},
		"steps":       []string{"mix", "bake"},
	}, userID)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode(t, w)
}

func TestHealthz(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, "GET", "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestCreateRecipe(t *testing.T) {
	router := setupRouter(t)

	recipe := createRecipe(t, router, "alice")
	assert.NotEmpty(t, recipe["id"])
	assert.Equal(t, "apple-pie", recipe["slug"])
	assert.Equal(t, "alice", recipe["authorId"])
	assert.Equal(t, "medium", recipe["difficulty"])
	assert.Equal(t, float64(8), recipe["servings"])
	assert.Nil(t, recipe["minutes"])

	ingredients := recipe["ingredients"].([]interface{})
	require.Len(t, ingredients, 2)
	first := ingredients[0].(map[string]interface{})
	assert.Equal(t, "apples", first["line"])
	assert.Equal(t, float64(0), first["pos"])
}

func TestCreateRecipeRequiresIdentity(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/recipes", map[string]interface{}{"title": "Pie"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_REQUIRED", decode(t, w)["code"])
}

func TestCreateRecipeRequiresTitle(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/recipes", map[string]interface{}{"summary": "no title"}, "alice")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION", decode(t, w)["code"])
}

func TestCreateRecipeAcceptsFreeformLines(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, "POST", "/api/recipes", map[string]interface{}{
		"title":       "Jam",
		"ingredients": "berries\nsugar",
	}, "alice")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	recipe := decode(t, w)
	ingredients := recipe["ingredients"].([]interface{})
	require.Len(t, ingredients, 2)
	assert.Equal(t, "berries", ingredients[0].(map[string]interface{})["line"])
}

func TestGetRecipeByIDAndSlug(t *testing.T) {
	router := setupRouter(t)

	created := createRecipe(t, router, "alice")
	id := created["id"].(string)

	w := doJSON(t, router, "GET", "/api/recipes/"+id, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Apple Pie", decode(t, w)["title"])

	w = doJSON(t, router, "GET", "/api/recipes/apple-pie", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decode(t, w)["id"])

	w = doJSON(t, router, "GET", "/api/recipes/banana-bread", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRecipesWithQuery(t *testing.T) {
	router := setupRouter(t)

	createRecipe(t, router, "alice")

	w := doJSON(t, router, "GET", "/api/recipes", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var all []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 1)

	w = doJSON(t, router, "GET", "/api/recipes?q=banana", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var none []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &none))
	assert.Empty(t, none)
}

func TestLikeAndUnlikeRecipe(t *testing.T) {
	router := setupRouter(t)

	id := createRecipe(t, router, "alice")["id"].(string)

	w := doJSON(t, router, "POST", "/api/recipes/"+id+"/like", nil, "bob")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["likes"])

	// Liking twice stays at one.
	w = doJSON(t, router, "POST", "/api/recipes/"+id+"/like", nil, "bob")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["likes"])

	w = doJSON(t, router, "DELETE", "/api/recipes/"+id+"/like", nil, "bob")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["likes"])

	w = doJSON(t, router, "POST", "/api/recipes/"+id+"/like", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, "POST", "/api/recipes/missing/like", nil, "bob")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReviewLifecycle(t *testing.T) {
	router := setupRouter(t)

	id := createRecipe(t, router, "alice")["id"].(string)

	w := doJSON(t, router, "POST", "/api/recipes/"+id+"/reviews", map[string]interface{}{
		"rating": 9,
		"body":   "delicious",
	}, "bob")
	require.Equal(t, http.StatusCreated, w.Code)
	review := decode(t, w)
	assert.Equal(t, float64(5), review["rating"])
	assert.Equal(t, "bob", review["userId"])
	reviewID := review["id"].(string)

	// A third party may not remove bob's review.
	w = doJSON(t, router, "DELETE", "/api/recipes/"+id+"/reviews/"+reviewID, nil, "carol")
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The recipe author may.
	w = doJSON(t, router, "DELETE", "/api/recipes/"+id+"/reviews/"+reviewID, nil, "alice")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "DELETE", "/api/recipes/"+id+"/reviews/"+reviewID, nil, "alice")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecipeOwnership(t *testing.T) {
	router := setupRouter(t)

	id := createRecipe(t, router, "alice")["id"].(string)

	w := doJSON(t, router, "DELETE", "/api/recipes/"+id, nil, "bob")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", decode(t, w)["code"])

	w = doJSON(t, router, "DELETE", "/api/recipes/"+id, nil, "alice")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/api/recipes/"+id, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
