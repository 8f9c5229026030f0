package sessionControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/KevinStop/inventory-management-frontend/middleware"
	"github.com/KevinStop/inventory-management-frontend/services"
	"github.com/KevinStop/inventory-management-frontend/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type expiryMessage struct {
	Expiring bool `json:"expiring"`
}

// GET /ws/session streams session-expiry warnings to the browser. One
// monitor per connection, polling the backend as this user once per second;
// closing the socket is the teardown point that cancels the poller.
func ExpiryStream(users *services.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		ctx := middleware.SessionContext(c)
		monitor := session.NewMonitor(users.RemainingTime)
		updates, unsubscribe := monitor.Subscribe()
		defer unsubscribe()

		monitor.Start(ctx)
		defer monitor.Stop()

		// Reader goroutine: its only job is to notice the peer going away.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-closed:
				return
			case expiring := <-updates:
				if err := conn.WriteJSON(expiryMessage{Expiring: expiring}); err != nil {
					return
				}
			}
		}
	}
}
