package web

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/asynccnu/be-toolkit/pkg/ginx"
	"github.com/asynccnu/be-toolkit/repository/dao"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "web.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, dao.InitTables(context.Background(), db))
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestServer(hdls ...handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	for _, h := range hdls {
		h.RegisterRoutes(server)
	}
	return server
}

func do(t *testing.T, server http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

// decodeResult Data 再解到 data 上
func decodeResult(t *testing.T, recorder *httptest.ResponseRecorder, data any) ginx.Result {
	var raw struct {
		Code int             `json:"code"`
		Msg  string          `json:"msg"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &raw))
	if data != nil && len(raw.Data) > 0 && string(raw.Data) != "null" {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}
	return ginx.Result{Code: raw.Code, Msg: raw.Msg}
}
