package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MayerAttila/Gifty/models"
	"github.com/MayerAttila/Gifty/services"
	"github.com/MayerAttila/Gifty/storage"
)

// Defaults of the rolling month rail.
const (
	DefaultPastMonths   = 6
	DefaultFutureMonths = 12
)

type CalendarHandler struct {
	Members storage.MemberRepository
}

// GetMonth returns the aggregated calendar data for one month.
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	members, err := h.Members.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	c.JSON(http.StatusOK, services.BuildMonthData(year, time.Month(month), members))
}

// GetWindow returns the month rail around the current month.
func (h *CalendarHandler) GetWindow(c *gin.Context) {
	past := intQuery(c, "past", DefaultPastMonths)
	future := intQuery(c, "future", DefaultFutureMonths)

	members, err := h.Members.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"todayKey": models.DateKey(now),
		"months":   services.BuildMonthWindow(now, past, future, members),
	})
}

// GetUpcoming returns the events of the next N days (default 30).
func (h *CalendarHandler) GetUpcoming(c *gin.Context) {
	days := intQuery(c, "days", 30)
	if days > 366 {
		days = 366
	}

	members, err := h.Members.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	events := services.UpcomingEvents(members, time.Now(), days)
	c.JSON(http.StatusOK, gin.H{"days": days, "events": events})
}

// GetFeed serves the occasion calendar as an ICS download.
func (h *CalendarHandler) GetFeed(c *gin.Context) {
	members, err := h.Members.Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load members"})
		return
	}

	cal := services.BuildOccasionCalendar(members, time.Now())
	c.Header("Content-Disposition", `attachment; filename=gifty-occasions.ics`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
