package router

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/3Eeeecho/go-fileportal/docs"
	"github.com/3Eeeecho/go-fileportal/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ginParam = regexp.MustCompile(`:(\w+)`)

// swagger 文档必须和实际注册的 /api/v1 路由一一对应
func TestSwaggerDocMatchesRoutes(t *testing.T) {
	engine := InitRouter(&RouterConfig{Cfg: &config.Config{Server: config.ServerConfig{Mode: gin.TestMode}}})

	registered := map[string]bool{}
	for _, r := range engine.Routes() {
		if !strings.HasPrefix(r.Path, "/api/v1") {
			continue
		}
		path := ginParam.ReplaceAllString(r.Path, "{$1}")
		registered[strings.ToLower(r.Method)+" "+path] = true
	}

	var doc struct {
		BasePath string                            `json:"basePath"`
		Paths    map[string]map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc))
	assert.Equal(t, "/", doc.BasePath)

	documented := map[string]bool{}
	for path, ops := range doc.Paths {
		for method := range ops {
			documented[method+" "+path] = true
		}
	}

	assert.Equal(t, registered, documented)
}
