package info

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, src UptimeSource) {
	router.GET("/", Handler(src))
}
