package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/marqueai/internal/auth"
	"github.com/BruksfildServices01/marqueai/internal/httperr"
)

const ContextProfileID = "profileID"

func AuthMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Autenticação necessária.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		profileID, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Sessão inválida ou expirada.")
			return
		}

		c.Set(ContextProfileID, profileID)
		c.Next()
	}
}

// ProfileID returns the authenticated tenant. Only valid behind AuthMiddleware.
func ProfileID(c *gin.Context) uuid.UUID {
	return c.MustGet(ContextProfileID).(uuid.UUID)
}
