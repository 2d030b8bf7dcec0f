package middleware

import (
	"net/http"
	"strings"

	"espaco_castro/internal/usecase"
	"espaco_castro/pkg"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates the admin surface with the bearer token issued by the
// login endpoint. The original site left these endpoints open behind a
// client-side flag only; that gap is closed here.
func RequireAdmin(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" || !auth.ValidateToken(token) {
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(strings.TrimSpace(scheme), "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
