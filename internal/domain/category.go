package domain

type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Type string `gorm:"column:type;size:255" json:"type"`
}

func (Category) TableName() string { return "categories" }

// Models lists every persisted model, in dependency order, for auto-migration.
func Models() []any {
	return []any{&Category{}, &Question{}}
}
