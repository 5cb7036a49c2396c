// api/middleware/cache.go

package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/dev-anuragv/skillboard/api/logging"
	"github.com/dev-anuragv/skillboard/api/util"
)

// CacheResponse serves read handlers cache-aside. The entry key is derived
// from the handler identity plus the request's path and query parameters; on
// a hit the stored payload is decoded through the handler's declared result
// schema and the rest of the chain never runs. On a miss the downstream
// response body is captured and written back best effort. Store failures
// only ever degrade to computing the response.
func CacheResponse(cache *util.CacheService, handler string, schema util.ResultSchema) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := cache.KeyFor(handler, requestArgs(c))

		if value, ok := cache.Fetch(c.Request.Context(), key, schema); ok {
			logger.Debug("Cache hit", zap.String("handler", handler))
			c.JSON(http.StatusOK, value)
			c.Abort()
			return
		}

		writer := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		if writer.Status() == http.StatusOK {
			cache.StoreRaw(c.Request.Context(), key, writer.body.Bytes())
		}
	}
}

// requestArgs normalizes the cacheable parts of the request into key
// material: path params and query values only, never headers or body.
func requestArgs(c *gin.Context) map[string]interface{} {
	args := make(map[string]interface{})
	for _, p := range c.Params {
		args[p.Key] = p.Value
	}
	for name, values := range c.Request.URL.Query() {
		if len(values) == 1 {
			args[name] = values[0]
			continue
		}
		args[name] = values
	}
	return args
}

type bodyCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
