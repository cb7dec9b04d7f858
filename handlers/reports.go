package handlers

import (
	"net/http"
	"time"

	"cafe-pos-api/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// DailyDashboard returns the rollup for one local date, defaulting to today
func (h *ReportHandler) DailyDashboard(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	report, err := h.svc.DailySummary(date)
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// MonthlyDashboard returns the rollup for a (month, year) pair, defaulting
// to the current month
func (h *ReportHandler) MonthlyDashboard(c *gin.Context) {
	now := time.Now()
	month := c.DefaultQuery("month", now.Format("01"))
	year := c.DefaultQuery("year", now.Format("2006"))

	report, err := h.svc.MonthlySummary(month, year)
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// YearlyDashboard returns the rollup for a year, defaulting to the current one
func (h *ReportHandler) YearlyDashboard(c *gin.Context) {
	year := c.DefaultQuery("year", time.Now().Format("2006"))

	report, err := h.svc.YearlySummary(year)
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// TimeIntelligence returns revenue/count/avg-profit per time slot over the
// whole log — admin only
func (h *ReportHandler) TimeIntelligence(c *gin.Context) {
	result, err := h.svc.TimeIntelligence()
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// StaffPerformance ranks operators by revenue under any combination of
// date/month/year filters — admin only
func (h *ReportHandler) StaffPerformance(c *gin.Context) {
	result, err := h.svc.StaffPerformance(c.Query("date"), c.Query("month"), c.Query("year"))
	if err != nil {
		c.JSON(services.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
