package middleware

import (
	"net/http"
	"strings"

	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthPatientMiddleware verifies the bearer token and places the patient ID
// into the request context. Token issuance and account management live in the
// external identity service; this only verifies.
func JWTAuthPatientMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		patientID, err := utils.ExtractPatientIDFromToken(tokenString)
		if err != nil || patientID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("patientID", patientID)
		c.Next()
	}
}

// PatientID returns the authenticated patient ID from the gin context.
func PatientID(c *gin.Context) string {
	if v, ok := c.Get("patientID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
