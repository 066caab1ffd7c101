package persistence

import "time"

// PlanetModel represents the planets table. Resources are stored as a
// JSON array (text keeps the schema portable between SQLite and
// PostgreSQL).
type PlanetModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	PlanetType string    `gorm:"column:planet_type;not null"`
	Resources  string    `gorm:"column:resources;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (PlanetModel) TableName() string {
	return "planets"
}

// OperatorModel represents the operators table. The skill block is
// stored as JSON text alongside the derived capacity.
type OperatorModel struct {
	Name      string    `gorm:"column:name;primaryKey"`
	Capacity  int       `gorm:"column:capacity;not null;default:0"`
	Skills    string    `gorm:"column:skills;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (OperatorModel) TableName() string {
	return "operators"
}
