package live

import (
	"encoding/json"
	"time"

	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second    // 写操作超时时间
	pongWait       = 60 * time.Second    // 等待 pong 消息的最大时间
	pingPeriod     = (pongWait * 9) / 10 // 发送 ping 消息的周期
	maxMessageSize = 512
	sendBuffer     = 32
	controlBuffer  = 8
)

// Client 一个 websocket 连接，只有 writePump 会写 conn
// send 只由 hub 写入和关闭，control 只由 readPump 写入且从不关闭
type Client struct {
	id      string
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	control chan []byte
	l       logger.Logger
}

func (c *Client) readPump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.l.Warn("websocket 异常断开", logger.String("client", c.id), logger.Error(err))
			}
			return
		}

		var msg Message
		if err = json.Unmarshal(data, &msg); err != nil {
			c.reply(Message{Type: TypeError, Code: CodeInvalidMessage, Data: "invalid message"})
			continue
		}
		switch msg.Type {
		case TypeHeartbeat:
			c.reply(Message{Type: TypeHeartbeatResponse, Code: CodeSuccess, Data: "pong"})
		default:
			c.reply(Message{Type: TypeError, Code: CodeInvalidMessage, Data: "unknown message type"})
		}
	}
}

// reply 只在 readPump 里调用，队列满了直接丢弃
func (c *Client) reply(msg Message) {
	data, err := marshalMessage(msg)
	if err != nil {
		return
	}
	select {
	case c.control <- data:
	default:
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// 每条消息单独一帧，前端直接 JSON.parse
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case message := <-c.control:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
