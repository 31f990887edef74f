package idempotency

import (
	"bytes"
	"net/http"

	"ads-billing/internal/auth"
	"ads-billing/internal/observability"

	"github.com/gin-gonic/gin"
)

type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Middleware replays cached responses for repeated Idempotency-Key headers.
// Requests without the header pass through. Cache failures never fail the
// request; the handler simply runs.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderKey)
		if key == "" || len(key) > 255 {
			c.Next()
			return
		}

		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "idempotency_key", Value: key},
		)
		scope := requestScope(c)

		cached, ok, err := s.Lookup(ctx, scope, key)
		if err != nil {
			s.logger.WarnWithError(ctx, "idempotency lookup failed", err)
		}
		if ok {
			c.Header("Idempotent-Replayed", "true")
			c.Data(cached.Status, cached.ContentType, cached.Body)
			c.Abort()
			return
		}

		w := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.Status() >= http.StatusInternalServerError {
			return
		}
		resp := Response{
			Status:      w.Status(),
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.body.Bytes(),
		}
		if err := s.Store(ctx, scope, key, resp); err != nil {
			s.logger.WarnWithError(ctx, "failed to cache idempotent response", err)
		}
	}
}

// requestScope ties a key to the concrete path and, when authenticated, to
// the caller. Two sellers reusing a key never see each other's response.
func requestScope(c *gin.Context) string {
	scope := c.Request.Method + ":" + c.Request.URL.Path
	if callerID, ok := auth.UserID(c); ok {
		scope += ":" + callerID.String()
	}
	return scope
}
