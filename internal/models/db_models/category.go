package db_models

// Category rows form a fixed-ish enumeration (Historical, Cafe, Adventure,
// ...) kept in the database so admins can edit it without a deploy.
type Category struct {
	BaseModel
	Name   string  `gorm:"unique;not null" json:"name"`
	Places []Place `gorm:"foreignKey:CategoryID" json:"-"`
}
