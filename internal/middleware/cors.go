package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls which cross-origin requests are accepted.
type CORSConfig struct {
	AllowedOrigins []string
	AllowWildcard  bool
}

// DefaultCORSConfig returns the CORS policy for an environment. Production
// restricts origins to the known frontends; everything else is permissive
// for local development.
func DefaultCORSConfig(environment string) CORSConfig {
	if environment == "production" {
		return CORSConfig{
			AllowedOrigins: []string{
				"https://eduforge.io.vn",
				"https://admin.eduforge.io.vn",
			},
		}
	}
	return CORSConfig{AllowWildcard: true}
}

// CORS returns a middleware that applies the given CORS policy and answers
// preflight requests.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" && isOriginAllowed(origin, cfg) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, lang, X-Requested-With")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func isOriginAllowed(origin string, cfg CORSConfig) bool {
	if cfg.AllowWildcard {
		return true
	}

	for _, allowed := range cfg.AllowedOrigins {
		if allowed == "*" || origin == allowed {
			return true
		}
		// Wildcard subdomain (*.example.com)
		if strings.HasPrefix(allowed, "*.") {
			if strings.HasSuffix(origin, strings.TrimPrefix(allowed, "*")) {
				return true
			}
		}
	}

	return false
}
