package notice

import "time"

type Notice struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text"`
	Date      time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
}

func (Notice) TableName() string {
	return "notices"
}
