package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thasarathi1830/AI-FITNESS/models"
	"github.com/thasarathi1830/AI-FITNESS/store"
	"github.com/thasarathi1830/AI-FITNESS/utils"
)

func newProtectedRouter(t *testing.T) (*gin.Engine, store.Store, *utils.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemoryStore()
	tokens := utils.NewTokenService("test-secret", 1)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens, st), func(c *gin.Context) {
		user := CurrentUser(c)
		require.NotNil(t, user)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r, st, tokens
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	r, st, tokens := newProtectedRouter(t)

	user := models.User{Email: "alice@example.com", Name: "Alice"}
	id, err := st.Collection(store.Users).InsertOne(context.Background(), &user)
	require.NoError(t, err)

	token, err := tokens.Issue(map[string]interface{}{"user_id": id})
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")
}

func TestAuthMiddlewareFailuresAreUniform(t *testing.T) {
	r, st, tokens := newProtectedRouter(t)

	// valid token naming an account that does not exist
	orphanToken, err := tokens.Issue(map[string]interface{}{"user_id": "65f000000000000000000001"})
	require.NoError(t, err)

	// valid token whose user_id is not an object id
	badIDToken, err := tokens.Issue(map[string]interface{}{"user_id": "not-an-object-id"})
	require.NoError(t, err)

	// token signed with a different secret for a real account
	user := models.User{Email: "bob@example.com"}
	id, err := st.Collection(store.Users).InsertOne(context.Background(), &user)
	require.NoError(t, err)
	foreignToken, err := utils.NewTokenService("other-secret", 1).Issue(map[string]interface{}{"user_id": id})
	require.NoError(t, err)

	cases := map[string]string{
		"missing header":    "",
		"not bearer":        "Basic abc123",
		"garbage token":     "Bearer not.a.token",
		"wrong secret":      "Bearer " + foreignToken,
		"malformed user id": "Bearer " + badIDToken,
		"deleted account":   "Bearer " + orphanToken,
	}

	var bodies []string
	for name, header := range cases {
		w := doRequest(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"), name)
		bodies = append(bodies, w.Body.String())
	}

	// every failure mode returns the identical body
	for _, body := range bodies {
		assert.JSONEq(t, `{"error": "could not validate credentials"}`, body)
	}
}
