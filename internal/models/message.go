package models

// Message is a text message attached to one relation, authored by one of
// the relation's participants.
type Message struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	SenderID   uint   `json:"sender_id" gorm:"index"`
	RelationID uint   `json:"relation_id" gorm:"index"`
	Content    string `json:"content" gorm:"type:text"`
	CreatedAt  int64  `json:"created_at"` // Unix timestamp, seconds
	Edited     bool   `json:"edited"`

	Sender   User     `json:"-" gorm:"foreignKey:SenderID"`
	Relation Relation `json:"-" gorm:"foreignKey:RelationID"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type EditMessageRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}
