package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS wraps rs/cors as a gin middleware. The chain only continues when
// rs/cors invokes the inner handler, so preflights and any request the
// policy rejects are terminated by rs/cors itself instead of falling
// through to the route. The skill endpoint is called server-to-server,
// so the defaults are deliberately permissive.
func CORS() gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return func(ctx *gin.Context) {
		allowed := false
		c.Handler(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			allowed = true
			ctx.Request = r
		})).ServeHTTP(ctx.Writer, ctx.Request)
		if !allowed {
			// rs/cors already wrote the preflight/rejection response.
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
