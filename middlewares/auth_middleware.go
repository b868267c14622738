package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thasarathi1830/AI-FITNESS/models"
	"github.com/thasarathi1830/AI-FITNESS/store"
	"github.com/thasarathi1830/AI-FITNESS/utils"
)

// CurrentUserKey is the context key the authenticated user is stored under.
const CurrentUserKey = "currentUser"

// AuthMiddleware validates the bearer token and loads the account it names.
// Every failure mode returns the same 401 so callers cannot distinguish a
// bad token from a deleted account.
func AuthMiddleware(tokens *utils.TokenService, st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthenticated(c)
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			abortUnauthenticated(c)
			return
		}
		oid, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		var user models.User
		err = st.Collection(store.Users).FindOne(c.Request.Context(), bson.M{"_id": oid}, &user)
		if errors.Is(err, store.ErrNoDocuments) {
			abortUnauthenticated(c)
			return
		}
		if err != nil {
			log.WithError(err).Error("auth: user lookup failed")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "store unavailable"})
			return
		}

		c.Set(CurrentUserKey, &user)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "could not validate credentials"})
}

// CurrentUser returns the user placed in the context by AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
