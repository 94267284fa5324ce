package ioc

import (
	"context"
	"database/sql"
	"time"

	"github.com/asynccnu/be-toolkit/repository/dao"
	"github.com/spf13/viper"
	_ "modernc.org/sqlite"
)

func InitDB() *sql.DB {
	type Config struct {
		DSN string `yaml:"dsn"`
	}
	cfg := Config{
		DSN: "file:toolkit.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
	}
	err := viper.UnmarshalKey("db", &cfg)
	if err != nil {
		panic(err)
	}
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		panic(err)
	}
	// sqlite 单写者，所有写操作串行
	db.SetMaxOpenConns(1)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = dao.InitTables(ctx, db); err != nil {
		panic(err)
	}
	return db
}
