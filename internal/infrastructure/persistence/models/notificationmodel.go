package models

type NotificationModel struct {
	ID             uint   `gorm:"primaryKey"`
	OrganizationID uint   `gorm:"not null;index"`
	UserID         uint   `gorm:"not null;index:idx_notifications_user_read,priority:1"`
	Type           string `gorm:"size:50;not null"`
	Title          string `gorm:"size:200;not null"`
	Body           string `gorm:"type:text;not null"`
	TicketID       *uint  `gorm:"index"`
	Read           bool   `gorm:"not null;default:false;index:idx_notifications_user_read,priority:2"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
