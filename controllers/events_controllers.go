package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/tannehbartee/dujar-system/events"
	"github.com/tannehbartee/dujar-system/utils"
)

type EventsController struct {
	DB *gorm.DB
}

func NewEventsController(db *gorm.DB) *EventsController {
	return &EventsController{DB: db}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamEvents upgrades the connection and keeps it registered with
// the hub until the client disconnects. Auth middleware has already
// validated the token before this handler runs.
func (ec *EventsController) StreamEvents(c *gin.Context) {
	role := c.GetString("role")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	events.RegisterClient(conn, role)
	utils.InfoLogger.Printf("events client connected (user=%d role=%s)", sessionUserID(c), role)

	defer func() {
		events.UnregisterClient(conn)
		utils.InfoLogger.Printf("events client disconnected (user=%d)", sessionUserID(c))
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
