package models

import "time"

// SafetyMark is the reviewer's own safe/unsafe flag, independent of the
// engine's verdict.
type SafetyMark string

const (
	MarkSafe   SafetyMark = "safe"
	MarkUnsafe SafetyMark = "unsafe"
	MarkNone   SafetyMark = "none"
)

func (m SafetyMark) Valid() bool {
	switch m {
	case MarkSafe, MarkUnsafe, MarkNone:
		return true
	}
	return false
}

// Review is an append-only user review keyed by barcode. The auto-increment
// ID doubles as a creation-order sequence; there is no edit or delete.
type Review struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time  `json:"date"`
	Barcode     string     `gorm:"type:varchar(64);index;not null" json:"barcode"`
	ProductName string     `json:"productName"`
	Rating      int        `gorm:"not null" json:"rating"` // 1..5
	Text        string     `json:"text,omitempty"`
	SafetyMark  SafetyMark `gorm:"type:varchar(10)" json:"safetyMark"`
	UserName    string     `json:"userName"`
}
