package handlers

import (
	"net/http"

	"chauffeur-admin/internal/notify"

	"github.com/gin-gonic/gin"
)

// GET /api/notifications returns the latest notifications, newest first.
func (h *Handlers) ListNotifications(c *gin.Context) {
	list := []notify.Notification{}
	if h.Recorder != nil {
		list = h.Recorder.Recent()
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/notifications/ws upgrades to a websocket that receives every
// notification as JSON.
func (h *Handlers) NotificationStream(c *gin.Context) {
	if h.Hub == nil {
		respondError(c, http.StatusServiceUnavailable, "stream_unavailable", "notification stream is disabled", nil)
		return
	}
	h.Hub.ServeWS(c.Writer, c.Request)
}
