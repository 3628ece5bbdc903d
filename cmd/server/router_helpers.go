package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fastqr.backend/pkg/metrics"
)

const (
	serviceName    = "fastqr-backend"
	serviceVersion = "1.0.0"
)

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
