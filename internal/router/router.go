package router

import (
	"github.com/gin-gonic/gin"

	"github.com/chronos-tachyon/huffmantext/internal/handler"
)

type Dependencies struct {
	CodecHandler *handler.CodecHandler
}

func Register(r *gin.Engine, d Dependencies) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/encode", d.CodecHandler.Encode)
		v1.POST("/decode", d.CodecHandler.Decode)

		docs := v1.Group("/documents")
		{
			docs.POST("", d.CodecHandler.Create)
			docs.GET("", d.CodecHandler.List)
			docs.GET("/:id", d.CodecHandler.GetByID)
			docs.GET("/:id/text", d.CodecHandler.GetText)
		}
	}
}
