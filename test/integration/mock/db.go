//go:build integration

package mock

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/daily-budget/backend/config"
	"github.com/daily-budget/backend/internal/infra/db"
	"github.com/daily-budget/backend/internal/integration/persistence/model"
)

var once sync.Once
var database *Db

type Db struct {
	Database *db.Database
	models   map[string]any
	order    []any
}

// NewDb opens a shared in-memory sqlite database with the full schema migrated.
// Every caller receives the same instance.
func NewDb(name string) *Db {
	once.Do(
		func() {
			database = open(name)
		},
	)

	return database
}

func open(name string) *Db {
	conn, err := db.NewConnection(&config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		URL:          fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := conn.Migrate(); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	newDbMock := &Db{
		Database: conn,
		models:   map[string]any{},
		order:    model.All(),
	}

	for _, m := range newDbMock.order {
		stmt := &gorm.Statement{DB: conn.DB()}
		if err := stmt.Parse(m); err != nil {
			panic(fmt.Sprintf("failed to parse model %T. err: %s", m, err.Error()))
		}
		newDbMock.models[stmt.Schema.Table] = m
	}

	return newDbMock
}

// Conn returns the gorm handle used by the API under test.
func (d *Db) Conn() *gorm.DB {
	return d.Database.DB()
}

// ClearDB removes every row, children before parents.
func (d *Db) ClearDB() error {
	for i := len(d.order) - 1; i >= 0; i-- {
		m := d.order[i]
		err := d.Conn().Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to clear %T: %w", m, err)
		}
	}
	return nil
}

func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
