package live

import (
	"context"
	"database/sql"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/events"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/repository"
	"github.com/asynccnu/be-toolkit/repository/dao"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type wsEvent struct {
	Type string                  `json:"type"`
	Code int                     `json:"code"`
	Data events.SGPAUpdatedEvent `json:"data"`
}

func newCourseRepository(t *testing.T) repository.CourseRepository {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "live.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, dao.InitTables(context.Background(), db))
	t.Cleanup(func() { db.Close() })
	return repository.NewCourseRepository(dao.NewSQLiteCourseDAO(db))
}

func TestHub_PushesSGPAUpdates(t *testing.T) {
	hub := NewHub(logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = hub.Start(ctx)
	}()

	repo := newCourseRepository(t)
	// 连接之前的数据不走 hub，避免旧事件混进来
	seed := service.NewCourseService(repo, events.NopProducer{}, logger.NewNopLogger())
	_, err := seed.Create(ctx, domain.Course{
		Name:    "Calculus",
		Credits: 3,
		Marks:   []domain.Mark{{Mark: 8, Total: 10, Weightage: 100}},
	})
	require.NoError(t, err)

	svc := service.NewCourseService(repo, hub, logger.NewNopLogger())
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(hub, svc, logger.NewNopLogger()).RegisterRoutes(engine)
	server := httptest.NewServer(engine)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/ws/sgpa", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	// 连上之后先收到当前的 SGPA
	var evt wsEvent
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, TypeSGPAUpdated, evt.Type)
	assert.Equal(t, CodeSuccess, evt.Code)
	assert.Equal(t, 1, evt.Data.CourseCount)
	assert.Equal(t, float64(9), evt.Data.SGPA)

	require.NoError(t, conn.WriteJSON(Message{Type: TypeHeartbeat}))
	var pong Message
	require.NoError(t, conn.ReadJSON(&pong))
	assert.Equal(t, TypeHeartbeatResponse, pong.Type)
	assert.Equal(t, "pong", pong.Data)

	_, err = svc.Create(ctx, domain.Course{
		Name:    "Chemistry",
		Credits: 1,
		Marks:   []domain.Mark{{Mark: 10, Total: 10, Weightage: 100}},
	})
	require.NoError(t, err)
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, TypeSGPAUpdated, evt.Type)
	assert.Equal(t, 2, evt.Data.CourseCount)
	assert.Equal(t, float64(4), evt.Data.TotalCredits)
	assert.InDelta(t, (9*3+10*1)/4.0, evt.Data.SGPA, 1e-9)
}

func TestHub_StopRejectsEvents(t *testing.T) {
	hub := NewHub(logger.NewNopLogger())
	stopped := make(chan struct{})
	go func() {
		_ = hub.Start(context.Background())
		close(stopped)
	}()
	require.NoError(t, hub.Stop(context.Background()))
	<-stopped

	// broadcast 有缓冲，塞满之后一定返回错误
	var err error
	for i := 0; i <= cap(hub.broadcast); i++ {
		err = hub.ProduceSGPAUpdatedEvent(context.Background(), events.SGPAUpdatedEvent{})
		if err != nil {
			break
		}
	}
	assert.ErrorIs(t, err, ErrHubStopped)
}

func TestHub_StopWhileClientSendsHeartbeats(t *testing.T) {
	hub := NewHub(logger.NewNopLogger())
	stopped := make(chan struct{})
	go func() {
		_ = hub.Start(context.Background())
		close(stopped)
	}()

	svc := service.NewCourseService(newCourseRepository(t), hub, logger.NewNopLogger())
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(hub, svc, logger.NewNopLogger()).RegisterRoutes(engine)
	server := httptest.NewServer(engine)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/ws/sgpa", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var evt wsEvent
	require.NoError(t, conn.ReadJSON(&evt))
	assert.Equal(t, TypeSGPAUpdated, evt.Type)

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for i := 0; i < 200; i++ {
			if conn.WriteJSON(Message{Type: TypeHeartbeat}) != nil {
				return
			}
		}
	}()

	// 读到一次心跳回复，确认 readPump 正在回写
	for {
		var msg Message
		require.NoError(t, conn.ReadJSON(&msg))
		if msg.Type == TypeHeartbeatResponse {
			break
		}
	}
	require.NoError(t, hub.Stop(context.Background()))
	<-stopped

	// hub 停止后连接会被关闭，读最终一定出错
	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			break
		}
	}
	assert.Error(t, err)
	<-writerDone
}
