package models

import "time"

// Section is one ordered content block of a Project. The full set of
// sections for a project is replaced atomically whenever content
// generation runs; there is no partial generation state.
type Section struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Position  int       `gorm:"column:position;not null" json:"order"`
	ProjectID uint64    `gorm:"not null;index" json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}
