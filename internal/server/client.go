package server

import (
	"net/http"
	"time"

	"skirmish-server/internal/engine"
	"skirmish-server/pkg/api"
	"skirmish-server/pkg/battlefield"
	"skirmish-server/pkg/logger"
	"skirmish-server/pkg/utils"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// WebSocket settings
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client sits between one spectator connection and the GameService.
type Client struct {
	Game *engine.GameService
	Conn *websocket.Conn
	// Send carries api.TickFrame and api.ErrorFrame values.
	Send chan any
	ID   string

	log *logrus.Entry
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	id := utils.GenerateID()
	return &Client{
		Game: game,
		Conn: conn,
		Send: make(chan any, 256),
		ID:   id,
		log: logger.Log.WithFields(logrus.Fields{
			"component":    "ws_client",
			"spectator_id": id,
		}),
	}
}

// subscribe registers with the hub and forwards frames into Send until the hub closes the channel.
func (c *Client) subscribe() {
	frames := c.Game.Hub.Register(c.ID)
	c.log.Info("Spectator connected")

	go func() {
		for f := range frames {
			select {
			case c.Send <- f:
			default:
				c.log.WithField("tick", f.Tick).Debug("Send buffer full, frame dropped")
			}
		}
		close(c.Send)
	}()
}

// readPump reads commands until the connection drops.
func (c *Client) readPump() {
	defer func() {
		c.Game.Hub.Unregister(c.ID)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Spectator disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Error("WS error")
			}
			return
		}
		c.handleCommand(cmd)
	}
}

func (c *Client) handleCommand(cmd api.ClientCommand) {
	c.log.WithField("action", cmd.Action).Debug("Command received")

	switch cmd.Action {
	case api.ActionStart:
		p, err := api.DecodePayload[api.StartPayload](cmd.Payload)
		if err != nil {
			c.reply(err)
			return
		}
		params := battlefield.Params{Width: p.Width, Height: p.Height, Starts: p.Starts, Finishes: p.Finishes}
		if err := c.Game.StartGame(params); err != nil {
			c.reply(err)
		}

	case api.ActionStop:
		if !c.Game.StopGame() {
			c.reply(engine.ErrNoGame)
		}

	default:
		c.log.WithField("action", cmd.Action).Warn("Unknown action")
		c.reply(errUnknownAction(cmd.Action))
	}
}

// reply sends an error frame to this spectator only. A full buffer drops it.
func (c *Client) reply(err error) {
	select {
	case c.Send <- api.ErrorFrame{Type: api.TypeError, Message: err.Error()}:
	default:
		c.log.WithError(err).Warn("Send buffer full, error dropped")
	}
}

// writePump forwards frames to the socket and keeps it alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
