package model

import (
	"time"
)

type Turn struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	UserId    string    `gorm:"type:text;not null;index"`
	Role      string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Turn) TableName() string {
	return "turns"
}
