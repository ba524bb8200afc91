package tokenstore

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	nameAccess  = "access_token"
	nameRefresh = "refresh_token"
)

// TokenRow is the durable form of a stored token: one row per token
// name per scope. A scope is a browser session in the gateway and a
// fixed literal in single-user tools.
type TokenRow struct {
	Scope     string `gorm:"primaryKey"`
	Name      string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (TokenRow) TableName() string { return "token_store" }

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&TokenRow{})
}

// Gorm is the durable Store. It works against any dialect the module
// wires up (sqlite file, postgres).
type Gorm struct {
	db    *gorm.DB
	scope string
}

func NewGorm(db *gorm.DB, scope string) *Gorm {
	return &Gorm{db: db, scope: scope}
}

func (g *Gorm) SetToken(access, refresh string) error {
	if err := g.put(nameAccess, access); err != nil {
		return err
	}
	if refresh != "" {
		return g.put(nameRefresh, refresh)
	}
	return nil
}

func (g *Gorm) put(name, value string) error {
	row := TokenRow{Scope: g.scope, Name: name, Value: value}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "scope"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

func (g *Gorm) get(name string) (string, error) {
	var row TokenRow
	err := g.db.Where("scope = ? AND name = ?", g.scope, name).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (g *Gorm) AccessToken() (string, error)  { return g.get(nameAccess) }
func (g *Gorm) RefreshToken() (string, error) { return g.get(nameRefresh) }

func (g *Gorm) Clear() error {
	return g.db.Where("scope = ?", g.scope).Delete(&TokenRow{}).Error
}
