package generate

import "github.com/gin-gonic/gin"

// registers code generation routes
func RegisterRoutes(router gin.IRouter, gen CodeGenerator, counters Counters, notifier Notifier, runner TaskRunner, opts Options) {
	router.POST("/ai_gen", Handler(gen, counters, notifier, runner, opts))
}
