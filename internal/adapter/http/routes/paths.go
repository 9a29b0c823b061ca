package routes

import (
	"net/http"

	"placement_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing          = "/ping"
	PathPayapp        = "/payapp"
	PathConsultations = "/consultations"
	PathPractice      = "/practice"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addPayappRoutes(rg *gin.RouterGroup, h *handlers.PayappHandler) {
	payapp := rg.Group(PathPayapp)
	{
		payapp.Any("/feedback", h.Feedback)
		payapp.GET("/result", h.Result)
		payapp.POST("/result", h.Result)
	}
}

func addConsultationRoutes(rg *gin.RouterGroup, h *handlers.ConsultationHandler, admin gin.HandlerFunc) {
	consultations := rg.Group(PathConsultations)
	{
		consultations.POST("", h.Create)
		consultations.GET("", admin, h.List)
		consultations.PATCH("", admin, h.Update)
		consultations.DELETE("", admin, h.Delete)
		consultations.GET("/export", admin, h.Export)
	}
}

func addPracticeRoutes(rg *gin.RouterGroup, h *handlers.PracticeApplicationHandler, admin gin.HandlerFunc) {
	practice := rg.Group(PathPractice)
	{
		practice.POST("", h.Submit)
		practice.GET("", admin, h.List)
		practice.PATCH("", admin, h.Update)
		practice.DELETE("", admin, h.Delete)
		practice.GET("/export", admin, h.Export)
	}
}
