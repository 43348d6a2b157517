package api

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// sessionTTL is how long an issued household token stays valid.
const sessionTTL = 30 * 24 * time.Hour

type sessionRequest struct {
	Household string `json:"household" binding:"required"`
}

// CreateSession issues a signed token for a household. The app runs on a
// trusted local device, so there is no password; the token just scopes
// state to a household name.
func (s *Server) CreateSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "household name required"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"household": req.Household,
		"exp":       time.Now().Add(sessionTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}

// AuthMiddleware handles JWT authentication
func (s *Server) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			// The chat socket cannot set headers from a browser, so it
			// passes the token as a query parameter instead.
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if household, ok := claims["household"].(string); ok {
				c.Set("household", household)
			}
		}
		c.Next()
	}
}

// household returns the authenticated household name, if any.
func household(c *gin.Context) string {
	name, _ := c.Get("household")
	if s, ok := name.(string); ok {
		return s
	}
	return ""
}
