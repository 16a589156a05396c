package stats

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, src Source) {
	router.GET("/stats", Handler(src))
}
