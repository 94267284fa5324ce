package live

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/asynccnu/be-toolkit/events"
	"github.com/asynccnu/be-toolkit/pkg/logger"
)

const (
	TypeSGPAUpdated       = "sgpa_updated"
	TypeHeartbeat         = "heartbeat"
	TypeHeartbeatResponse = "heartbeat_response"
	TypeError             = "error"
)

const (
	CodeSuccess        = 0
	CodeInvalidMessage = 1
)

var ErrHubStopped = errors.New("live: hub 已停止")

type Message struct {
	Type string `json:"type"`
	Code int    `json:"code"`
	Data any    `json:"data"`
}

// Hub 维护所有在线连接，把 SGPA 变更广播出去
// 同时实现 events.Producer 和 kratos 的 transport.Server
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	l          logger.Logger
}

func NewHub(l logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		l:          l,
	}
}

var _ events.Producer = (*Hub)(nil)

// Start 阻塞运行主循环，直到 ctx 结束或者 Stop
func (h *Hub) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return nil
		case <-h.done:
			h.closeAll()
			return nil
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.l.Debug("websocket 连接加入", logger.Int("online", len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// 消费太慢的直接踢掉
					h.l.Warn("websocket 发送队列已满，断开连接")
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

func (h *Hub) Stop(ctx context.Context) error {
	h.stopOnce.Do(func() {
		close(h.done)
	})
	return nil
}

func (h *Hub) closeAll() {
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) ProduceSGPAUpdatedEvent(ctx context.Context, evt events.SGPAUpdatedEvent) error {
	msg, err := marshalMessage(Message{Type: TypeSGPAUpdated, Code: CodeSuccess, Data: evt})
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- msg:
		return nil
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) join(ctx context.Context, c *Client) error {
	select {
	case h.register <- c:
		return nil
	case <-h.done:
		return ErrHubStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func marshalMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
