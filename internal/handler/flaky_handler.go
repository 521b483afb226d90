package handler

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Flaky simulates a slow or failing upstream for client resilience testing.
// ?wait= adds a delay in seconds (capped at 10), ?errorRate= is the 0..1
// probability of answering 500 instead of 200.
func Flaky(c *gin.Context) {
	wait, _ := strconv.ParseFloat(c.DefaultQuery("wait", "0"), 64)
	errorRate, _ := strconv.ParseFloat(c.DefaultQuery("errorRate", "0"), 64)

	if wait > 10 {
		wait = 10
	}
	if wait > 0 {
		select {
		case <-time.After(time.Duration(wait * float64(time.Second))):
		case <-c.Request.Context().Done():
			return
		}
	}

	if errorRate > 0 && rand.Float64() < errorRate {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Simulated failure"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok", "waited": wait})
}
