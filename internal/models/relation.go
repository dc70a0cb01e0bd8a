package models

// RelationStatus is persisted as a small integer; the values are fixed so
// existing rows stay readable across migrations.
type RelationStatus int

const (
	RelationPending  RelationStatus = 0
	RelationAccepted RelationStatus = 1
	RelationBlocked  RelationStatus = 2
)

// Relation is the single directed edge holding the friendship state between
// two users. One record per unordered pair: a request can be accepted or
// blocked regardless of which side initiated it.
type Relation struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	SenderID   uint           `json:"sender_id" gorm:"index"`
	ReceiverID uint           `json:"receiver_id" gorm:"index"`
	Status     RelationStatus `json:"status"`

	Sender   User      `json:"-" gorm:"foreignKey:SenderID"`
	Receiver User      `json:"-" gorm:"foreignKey:ReceiverID"`
	Messages []Message `json:"-" gorm:"foreignKey:RelationID;constraint:OnDelete:CASCADE"`
}
