package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hragent/internal/db"
	"hragent/internal/pkg/agent"
	"hragent/internal/report"

	"github.com/gin-gonic/gin"
)

type HRController struct {
	Store    *db.Store
	Verifier *agent.Verifier
	Reporter *report.Reporter
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// Ask runs one verification cycle for the posted question.
func (hc *HRController) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	result, err := hc.Verifier.Run(c.Request.Context(), req.Question, hc.Store)
	if err != nil {
		var gatewayErr *agent.GatewayError
		if errors.As(err, &gatewayErr) {
			log.Printf("cycle aborted: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "responder unavailable"})
			return
		}

		log.Printf("cycle failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	resp := gin.H{
		"cycle_id": result.CycleID,
		"answer":   result.Answer,
		"verdict":  result.Verdict.Label,
	}
	if result.Verdict.Reason != "" {
		resp["reason"] = result.Verdict.Reason
	}
	if result.LogErr != nil {
		// Degraded, not failed: the answer stands even if the audit trail write did not.
		resp["log_warning"] = "interaction could not be recorded"
	}

	c.JSON(http.StatusOK, resp)
}

// GetEmployees returns the canonical employee set
func (hc *HRController) GetEmployees(c *gin.Context) {
	ctx := c.Request.Context()
	limit := getLimitWithDefault(c, 100)

	employees, err := hc.Store.Employees(ctx, limit)
	if err != nil {
		log.Printf("failed to get employees: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employees": employees,
	})
}

// GetLogs returns recent interaction audit entries, newest first
func (hc *HRController) GetLogs(c *gin.Context) {
	ctx := c.Request.Context()
	limit := getLimitWithDefault(c, 50)

	logs, err := hc.Store.RecentLogs(ctx, limit)
	if err != nil {
		log.Printf("failed to get interaction logs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logs": logs,
	})
}

// GetStats returns the dashboard aggregates
func (hc *HRController) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	overview, err := hc.Reporter.Overview(ctx)
	if err != nil {
		log.Printf("failed to get overview: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	byDepartment, err := hc.Reporter.SalaryByDepartment(ctx)
	if err != nil {
		log.Printf("failed to get salary by department: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	byRegion, err := hc.Reporter.HeadcountByRegion(ctx)
	if err != nil {
		log.Printf("failed to get headcount by region: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	byPerformance, err := hc.Reporter.PerformanceByDepartment(ctx)
	if err != nil {
		log.Printf("failed to get performance distribution: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"overview":              overview,
		"salary_by_department":  byDepartment,
		"headcount_by_region":   byRegion,
		"performance_breakdown": byPerformance,
	})
}

func getLimitWithDefault(c *gin.Context, defaultValue int) int {
	var err error
	limit := defaultValue
	if c.Query("limit") != "" {
		limit, err = strconv.Atoi(c.Query("limit"))
		if err != nil {
			log.Printf("failed to parse limit: %v, using default value: %d", err, defaultValue)
			return defaultValue
		}
	}
	return limit
}
