package services

import (
	"encoding/json"
	"net/http"
	"sync"

	"consultorio_back_end_go/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Dashboard clients subscribe per professional; booking events for that
// professional are pushed so open day views refresh without polling.

var (
	agendaClientsMu sync.Mutex
	agendaClients   = make(map[string]map[*agendaClient]struct{}) // professionalID -> clients
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type agendaClient struct {
	professionalID string
	conn           *websocket.Conn
	send           chan []byte
}

// AgendaEvent is the payload pushed to subscribed dashboards.
type AgendaEvent struct {
	Type           string `json:"type"`
	ProfessionalID string `json:"professional_id"`
	Date           string `json:"date"`
	Time           string `json:"time"`
}

// ServeWs upgrades GET /ws?professionalId=... to a subscription for that
// professional's agenda events.
func ServeWs(c *gin.Context) {
	logger := utils.GetLogger()
	professionalID := c.Query("professionalId")
	if professionalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "professionalId is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "WebSocket upgrade failed: " + err.Error()})
		return
	}

	client := &agendaClient{professionalID: professionalID, conn: conn, send: make(chan []byte, 8)}
	agendaClientsMu.Lock()
	if agendaClients[professionalID] == nil {
		agendaClients[professionalID] = make(map[*agendaClient]struct{})
	}
	agendaClients[professionalID][client] = struct{}{}
	agendaClientsMu.Unlock()
	logger.Debug("Agenda subscriber connected", zap.String("professionalId", professionalID))

	go client.writePump()
	go client.readPump()
}

// BroadcastAgendaEvent pushes an event to every dashboard subscribed to
// the professional. Slow or gone clients are skipped, never waited on.
func BroadcastAgendaEvent(professionalID string, event AgendaEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	agendaClientsMu.Lock()
	defer agendaClientsMu.Unlock()
	for client := range agendaClients[professionalID] {
		select {
		case client.send <- payload:
		default:
		}
	}
}

func (c *agendaClient) readPump() {
	defer func() {
		c.conn.Close()
		agendaClientsMu.Lock()
		delete(agendaClients[c.professionalID], c)
		if len(agendaClients[c.professionalID]) == 0 {
			delete(agendaClients, c.professionalID)
		}
		agendaClientsMu.Unlock()
		utils.GetLogger().Debug("Agenda subscriber disconnected", zap.String("professionalId", c.professionalID))
	}()
	for {
		// subscribers only listen; reads just detect the close
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *agendaClient) writePump() {
	defer c.conn.Close()
	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			break
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}
