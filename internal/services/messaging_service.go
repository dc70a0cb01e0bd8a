package services

import (
	"fmt"
	"time"

	"github.com/chatup/backend/internal/models"
	"github.com/chatup/backend/internal/repositories"
)

// MessagingService attaches text messages to relations. Sending requires
// the caller to be a participant of the relation; editing and removal are
// reserved for the message's sender.
type MessagingService struct {
	messages  repositories.Repository[models.Message]
	relations repositories.Repository[models.Relation]
}

// NewMessagingService creates a new MessagingService
func NewMessagingService(messages repositories.Repository[models.Message], relations repositories.Repository[models.Relation]) *MessagingService {
	return &MessagingService{
		messages:  messages,
		relations: relations,
	}
}

// SendMessage appends a message to the relation. It fails when the relation
// is missing or the caller is not one of its participants.
func (s *MessagingService) SendMessage(user *models.User, relationID uint, content string) (bool, error) {
	relation, err := s.relations.Get(relationID)
	if err != nil {
		return false, fmt.Errorf("failed to look up relation: %w", err)
	}
	if relation == nil {
		return false, nil
	}
	if user.ID != relation.SenderID && user.ID != relation.ReceiverID {
		return false, nil
	}

	message := &models.Message{
		SenderID:   user.ID,
		RelationID: relationID,
		Content:    content,
		CreatedAt:  time.Now().Unix(),
	}
	if err := s.messages.Create(message); err != nil {
		return false, fmt.Errorf("failed to create message: %w", err)
	}
	return true, nil
}

// EditMessage replaces the content of a message and marks it edited. Only
// the sender may edit.
func (s *MessagingService) EditMessage(user *models.User, messageID uint, newContent string) (bool, error) {
	message, err := s.messages.Get(messageID)
	if err != nil {
		return false, fmt.Errorf("failed to look up message: %w", err)
	}
	if message == nil {
		return false, nil
	}
	if message.SenderID != user.ID {
		return false, nil
	}

	message.Content = newContent
	message.Edited = true
	if err := s.messages.Save(message); err != nil {
		return false, fmt.Errorf("failed to update message: %w", err)
	}
	return true, nil
}

// RemoveMessage deletes a message. Only the sender may remove.
func (s *MessagingService) RemoveMessage(user *models.User, messageID uint) (bool, error) {
	message, err := s.messages.Get(messageID)
	if err != nil {
		return false, fmt.Errorf("failed to look up message: %w", err)
	}
	if message == nil {
		return false, nil
	}
	if message.SenderID != user.ID {
		return false, nil
	}

	if err := s.messages.Delete(message); err != nil {
		return false, fmt.Errorf("failed to delete message: %w", err)
	}
	return true, nil
}

// ListMessages returns a relation's messages in send order. Only
// participants of the relation may read it.
func (s *MessagingService) ListMessages(user *models.User, relationID uint) ([]models.Message, error) {
	relation, err := s.relations.Get(relationID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up relation: %w", err)
	}
	if relation == nil {
		return nil, nil
	}
	if user.ID != relation.SenderID && user.ID != relation.ReceiverID {
		return nil, nil
	}
	return s.messages.ListOrdered("created_at ASC", "relation_id = ?", relationID)
}
