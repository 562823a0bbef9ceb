package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/tannehbartee/dujar-system/models"
)

// Event types pushed to connected dashboards.
const (
	EventBookingCreated  = "booking_created"
	EventRevenueRecorded = "revenue_recorded"
	EventExpenseRecorded = "expense_recorded"
	EventCashRecorded    = "cash_recorded"
	EventSettingUpdated  = "setting_updated"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub holds every connected dashboard client keyed by role.
type Hub struct {
	clients map[*websocket.Conn]string
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

func BroadcastBookingCreated(booking models.Booking) {
	broadcast(Message{Event: EventBookingCreated, Data: booking})
}

func BroadcastRevenueRecorded(revenue models.Revenue, booking models.Booking) {
	broadcast(Message{
		Event: EventRevenueRecorded,
		Data: map[string]interface{}{
			"revenue": revenue,
			"booking": booking,
		},
	})
}

func BroadcastExpenseRecorded(expense models.Expense) {
	broadcast(Message{Event: EventExpenseRecorded, Data: expense})
}

func BroadcastCashRecorded(entry models.CashManagement) {
	broadcast(Message{Event: EventCashRecorded, Data: entry})
}

func BroadcastMessage(msg Message) {
	broadcast(msg)
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("error marshaling event message: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("error sending event to client: %v", err)
		}
	}
}
