package services

import (
	"fmt"

	"github.com/chatup/backend/internal/models"
	"github.com/chatup/backend/internal/repositories"
)

// Pair lookups always combine the directional condition with the expected
// status: a transition only fires on the one relation between the two
// users, never on an unrelated record that happens to share the status.
const pairEitherDirection = "(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)"

// RelationsService maintains the friendship state machine between user
// pairs: absent -> Pending -> Accepted, with Blocked reachable from any
// state and unblock/remove returning the pair to absent.
type RelationsService struct {
	relations repositories.Repository[models.Relation]
}

// NewRelationsService creates a new RelationsService
func NewRelationsService(relations repositories.Repository[models.Relation]) *RelationsService {
	return &RelationsService{relations: relations}
}

// RequestRelation creates a Pending relation from user to target. It fails
// when the pair already has a relation in either direction, whatever its
// status.
func (s *RelationsService) RequestRelation(user *models.User, targetID uint) (bool, error) {
	if user.ID == targetID {
		return false, nil
	}

	existing, err := s.relations.First("("+pairEitherDirection+")",
		user.ID, targetID, targetID, user.ID)
	if err != nil {
		return false, fmt.Errorf("failed to look up relation: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	relation := &models.Relation{
		SenderID:   user.ID,
		ReceiverID: targetID,
		Status:     models.RelationPending,
	}
	if err := s.relations.Create(relation); err != nil {
		return false, fmt.Errorf("failed to create relation: %w", err)
	}
	return true, nil
}

// AcceptRelation transitions a Pending request to Accepted. Only the
// receiving side of the request may accept it.
func (s *RelationsService) AcceptRelation(user *models.User, targetID uint) (bool, error) {
	if user.ID == targetID {
		return false, nil
	}

	relation, err := s.relations.First("sender_id = ? AND receiver_id = ? AND status = ?",
		targetID, user.ID, models.RelationPending)
	if err != nil {
		return false, fmt.Errorf("failed to look up relation: %w", err)
	}
	if relation == nil {
		return false, nil
	}

	relation.Status = models.RelationAccepted
	if err := s.relations.Save(relation); err != nil {
		return false, fmt.Errorf("failed to update relation: %w", err)
	}
	return true, nil
}

// RemoveRelation deletes an Accepted relation between the pair, returning
// it to absent.
func (s *RelationsService) RemoveRelation(user *models.User, targetID uint) (bool, error) {
	if user.ID == targetID {
		return false, nil
	}

	relation, err := s.relations.First("("+pairEitherDirection+") AND status = ?",
		user.ID, targetID, targetID, user.ID, models.RelationAccepted)
	if err != nil {
		return false, fmt.Errorf("failed to look up relation: %w", err)
	}
	if relation == nil {
		return false, nil
	}

	if err := s.relations.Delete(relation); err != nil {
		return false, fmt.Errorf("failed to delete relation: %w", err)
	}
	return true, nil
}

// BlockRelation overwrites whatever relation exists between the pair with a
// Blocked record owned by the caller, creating one if the pair was absent.
// Block is terminal from every prior state.
func (s *RelationsService) BlockRelation(user *models.User, targetID uint) (bool, error) {
	if user.ID == targetID {
		return false, nil
	}

	existing, err := s.relations.First("("+pairEitherDirection+")",
		user.ID, targetID, targetID, user.ID)
	if err != nil {
		return false, fmt.Errorf("failed to look up relation: %w", err)
	}

	if existing != nil {
		existing.SenderID = user.ID
		existing.ReceiverID = targetID
		existing.Status = models.RelationBlocked
		if err := s.relations.Save(existing); err != nil {
			return false, fmt.Errorf("failed to update relation: %w", err)
		}
		return true, nil
	}

	relation := &models.Relation{
		SenderID:   user.ID,
		ReceiverID: targetID,
		Status:     models.RelationBlocked,
	}
	if err := s.relations.Create(relation); err != nil {
		return false, fmt.Errorf("failed to create relation: %w", err)
	}
	return true, nil
}

// UnblockRelation deletes a Blocked relation. Only the blocker may unblock.
func (s *RelationsService) UnblockRelation(user *models.User, targetID uint) (bool, error) {
	if user.ID == targetID {
		return false, nil
	}

	relation, err := s.relations.First("sender_id = ? AND receiver_id = ? AND status = ?",
		user.ID, targetID, models.RelationBlocked)
	if err != nil {
		return false, fmt.Errorf("failed to look up relation: %w", err)
	}
	if relation == nil {
		return false, nil
	}

	if err := s.relations.Delete(relation); err != nil {
		return false, fmt.Errorf("failed to delete relation: %w", err)
	}
	return true, nil
}

// GetFriends returns the user's Accepted relations, whichever side they are
// on.
func (s *RelationsService) GetFriends(user *models.User) ([]models.Relation, error) {
	return s.relations.List("(sender_id = ? OR receiver_id = ?) AND status = ?",
		user.ID, user.ID, models.RelationAccepted)
}

// GetUserBlocked returns the relations where the user blocked someone
func (s *RelationsService) GetUserBlocked(user *models.User) ([]models.Relation, error) {
	return s.relations.List("sender_id = ? AND status = ?", user.ID, models.RelationBlocked)
}

// GetBlockedUsers returns the relations where the user is the blocked party
func (s *RelationsService) GetBlockedUsers(user *models.User) ([]models.Relation, error) {
	return s.relations.List("receiver_id = ? AND status = ?", user.ID, models.RelationBlocked)
}
