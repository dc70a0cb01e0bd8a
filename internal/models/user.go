package models

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Passhash string `json:"-"`                        // Store bcrypt hash, ignore for JSON serialization

	SentRelations     []Relation `json:"-" gorm:"foreignKey:SenderID"`
	ReceivedRelations []Relation `json:"-" gorm:"foreignKey:ReceiverID"`
	SentMessages      []Message  `json:"-" gorm:"foreignKey:SenderID"`
	Sessions          []Session  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type SignUpRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
