package models

type UserModel struct {
	ID             uint   `gorm:"primaryKey"`
	OrganizationID uint   `gorm:"not null;index;uniqueIndex:idx_users_email_org,priority:2"`
	Email          string `gorm:"size:255;not null;uniqueIndex:idx_users_email_org,priority:1"`
	PasswordHash   string `gorm:"size:255;not null"`
	FirstName      string `gorm:"size:100;not null"`
	LastName       string `gorm:"size:100;not null"`
	Role           string `gorm:"size:20;not null;index"`
	Status         string `gorm:"size:20;not null;index"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type RefreshTokenModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	TokenHash string `gorm:"uniqueIndex;size:64;not null"`
	ExpiresAt int64  `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
