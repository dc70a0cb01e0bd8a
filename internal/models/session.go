package models

// Session binds a bearer token and refresh token to a user. Validity is
// determined solely by server-side lookup; a user may hold several
// concurrent sessions (multi-device).
type Session struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"user_id" gorm:"index"`
	Token        string `json:"-" gorm:"uniqueIndex"`
	RefreshToken string `json:"-" gorm:"uniqueIndex"`
	ExpiresAt    int64  `json:"expires_at"` // Unix timestamp, seconds

	User User `json:"-" gorm:"foreignKey:UserID"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}
