package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origins are already filtered by the CORS middleware
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GetNotifications pops every pending toast.
func (ctl *Controller) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.store.Notifications().Drain())
}

// NotificationStream pushes toasts over a websocket as they are queued.
func (ctl *Controller) NotificationStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		ctl.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// reader: only keeps the pong deadline fresh and notices the close
	go func() {
		defer cancel()
		conn.SetReadLimit(512)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					ctl.log.Debug().Err(err).Msg("WebSocket read error")
				}
				return
			}
		}
	}()

	queue := ctl.store.Notifications()
	for {
		waitCtx, cancelWait := context.WithTimeout(ctx, pingPeriod)
		n, err := queue.Next(waitCtx)
		cancelWait()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
			continue
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(n); err != nil {
			ctl.log.Warn().Err(err).Str("notification_id", n.ID.String()).Msg("dropped notification on closed stream")
			return
		}
	}
}
