package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Scan(c *ginext.Context)
	ScanImage(c *ginext.Context)
	LiveStatus(c *ginext.Context)
	ToggleLive(c *ginext.Context)
	PlanRecurring(c *ginext.Context)
	RecentScans(c *ginext.Context)
	MemberBadge(c *ginext.Context)
}

func InitRouter(mode string, h Handler, adminGate ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api", adminGate)
	{
		// Scans
		api.POST("/scan", h.Scan)
		api.POST("/scan/image", h.ScanImage)
		api.GET("/scans/recent", h.RecentScans)

		// Live window
		api.GET("/live-status", h.LiveStatus)
		api.POST("/live-attendance", h.ToggleLive)

		// Meetings
		api.POST("/meetings/recurring", h.PlanRecurring)

		// Badges
		api.GET("/members/:id/badge", h.MemberBadge)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
