package models

import "time"

type Message struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Sender    string    `gorm:"type:varchar(80);not null;index" json:"sender"`
	Recipient string    `gorm:"type:varchar(80);not null;index" json:"recipient"`
	Subject   string    `gorm:"type:varchar(200)" json:"subject"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
}
