package models

import "time"

type DocumentType string

const (
	DocumentTypeWord  DocumentType = "docx"
	DocumentTypeSlide DocumentType = "pptx"
)

// Valid reports whether t is one of the supported document formats.
func (t DocumentType) Valid() bool {
	return t == DocumentTypeWord || t == DocumentTypeSlide
}

type Project struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	Title        string       `gorm:"type:varchar(255);not null" json:"title"`
	DocumentType DocumentType `gorm:"type:varchar(10);not null" json:"document_type"`
	Outline      string       `gorm:"type:text" json:"outline"`
	Content      string       `gorm:"type:text" json:"content"`
	UserID       uint64       `gorm:"not null;index" json:"user_id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	// Relations
	Owner    User      `gorm:"foreignKey:UserID" json:"-"`
	Sections []Section `gorm:"foreignKey:ProjectID" json:"sections,omitempty"`
}
