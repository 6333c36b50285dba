package model

import "time"

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// 発行済みトークンの台帳。logoutはここをrevokeして全セッションを落とす。
type IssuedToken struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	ReferenceID string     `gorm:"type:uuid;not null;uniqueIndex" json:"referenceId"`
	Subject     string     `gorm:"type:varchar(64);not null;index" json:"subject"`
	TokenType   string     `gorm:"type:varchar(16);not null" json:"tokenType"`
	Scopes      string     `gorm:"type:varchar(255);not null" json:"scopes"`
	ExpiresAt   time.Time  `gorm:"not null;index" json:"expiresAt"`
	RevokedAt   *time.Time `gorm:"index" json:"revokedAt"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
}
