package live

import (
	"net/http"

	"github.com/asynccnu/be-toolkit/events"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *Hub
	svc      service.CourseService
	upgrader websocket.Upgrader
	l        logger.Logger
}

func NewHandler(hub *Hub, svc service.CourseService, l logger.Logger) *Handler {
	return &Handler{
		hub: hub,
		svc: svc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// 跨域在 cors 中间件里统一处理
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		l: l,
	}
}

func (h *Handler) RegisterRoutes(s *gin.Engine) {
	s.GET("/ws/sgpa", h.Serve)
}

// Serve 升级成 websocket，先推一次当前 SGPA，之后每次课程变更推一次
func (h *Handler) Serve(ctx *gin.Context) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		h.l.Error("计算 SGPA 失败", logger.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade 已经写过错误响应
		h.l.Warn("websocket 升级失败", logger.Error(err))
		return
	}

	c := &Client{
		id:      uuid.New().String(),
		hub:     h.hub,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		control: make(chan []byte, controlBuffer),
		l:       h.l,
	}
	first, err := marshalMessage(Message{
		Type: TypeSGPAUpdated,
		Code: CodeSuccess,
		Data: events.SGPAUpdatedEvent{
			SGPA:         summary.SGPA,
			TotalCredits: summary.TotalCredits,
			CourseCount:  len(summary.Courses),
		},
	})
	if err != nil {
		conn.Close()
		return
	}
	c.send <- first
	if err = h.hub.join(ctx.Request.Context(), c); err != nil {
		conn.Close()
		return
	}
	go c.writePump()
	go c.readPump()
}
