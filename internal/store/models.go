package store

// Item is one row of the inventory table.
type Item struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"type:text;not null" json:"name"`
	Quantity float64 `gorm:"type:real;not null" json:"quantity"`
	Unit     string  `gorm:"type:text;not null" json:"unit"`
	Category string  `gorm:"type:text;not null" json:"category"`
}

func (Item) TableName() string {
	return "inventory"
}

// Patch carries a partial update. Nil fields keep their stored value.
type Patch struct {
	Name     *string
	Quantity *float64
	Unit     *string
	Category *string
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Quantity == nil && p.Unit == nil && p.Category == nil
}

// columns maps the set fields to column names. A map is used so that zero
// values (quantity 0) are still written by gorm's Updates.
func (p Patch) columns() map[string]interface{} {
	cols := make(map[string]interface{}, 4)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Quantity != nil {
		cols["quantity"] = *p.Quantity
	}
	if p.Unit != nil {
		cols["unit"] = *p.Unit
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	return cols
}

type CategoryCount struct {
	Category string
	Count    int64
}
