package services

import (
	"testing"

	"github.com/chatup/backend/internal/models"
	"github.com/chatup/backend/internal/repositories"
	"gorm.io/gorm"
)

func newTestRelationsService(t *testing.T, db *gorm.DB) *RelationsService {
	t.Helper()
	return NewRelationsService(repositories.NewRepository[models.Relation](db))
}

func relationBetween(t *testing.T, db *gorm.DB, a, b uint) *models.Relation {
	t.Helper()
	var relation models.Relation
	err := db.Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		a, b, b, a).First(&relation).Error
	if err == gorm.ErrRecordNotFound {
		return nil
	}
	if err != nil {
		t.Fatalf("look up relation: %v", err)
	}
	return &relation
}

func TestRequestRelationSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")

	ok, err := svc.RequestRelation(alice, alice.ID)
	if err != nil {
		t.Fatalf("RequestRelation: %v", err)
	}
	if ok {
		t.Error("requesting a relation with yourself should fail")
	}
}

func TestRequestRelationCreatesPending(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	ok, err := svc.RequestRelation(alice, bob.ID)
	if err != nil {
		t.Fatalf("RequestRelation: %v", err)
	}
	if !ok {
		t.Fatal("first request between a pair should succeed")
	}

	relation := relationBetween(t, db, alice.ID, bob.ID)
	if relation == nil {
		t.Fatal("relation not persisted")
	}
	if relation.SenderID != alice.ID || relation.ReceiverID != bob.ID {
		t.Errorf("relation direction = %d->%d, want %d->%d",
			relation.SenderID, relation.ReceiverID, alice.ID, bob.ID)
	}
	if relation.Status != models.RelationPending {
		t.Errorf("status = %d, want %d (Pending)", relation.Status, models.RelationPending)
	}
}

func TestRequestRelationDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	if ok, _ := svc.RequestRelation(alice, bob.ID); !ok {
		t.Fatal("first request should succeed")
	}
	if ok, _ := svc.RequestRelation(alice, bob.ID); ok {
		t.Error("repeat request in the same direction should fail")
	}
	if ok, _ := svc.RequestRelation(bob, alice.ID); ok {
		t.Error("repeat request in the opposite direction should fail")
	}
}

func TestAcceptRelation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	if ok, _ := svc.RequestRelation(alice, bob.ID); !ok {
		t.Fatal("request should succeed")
	}

	ok, err := svc.AcceptRelation(bob, alice.ID)
	if err != nil {
		t.Fatalf("AcceptRelation: %v", err)
	}
	if !ok {
		t.Fatal("receiver accepting a pending request should succeed")
	}

	relation := relationBetween(t, db, alice.ID, bob.ID)
	if relation.Status != models.RelationAccepted {
		t.Errorf("status = %d, want %d (Accepted)", relation.Status, models.RelationAccepted)
	}
}

func TestAcceptRelationByInitiator(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	if ok, _ := svc.RequestRelation(alice, bob.ID); !ok {
		t.Fatal("request should succeed")
	}

	// Only the non-initiating party may accept
	if ok, _ := svc.AcceptRelation(alice, bob.ID); ok {
		t.Error("the request sender should not be able to accept their own request")
	}
}

func TestAcceptRelationNonexistent(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	if ok, _ := svc.AcceptRelation(bob, alice.ID); ok {
		t.Error("accepting a non-existent request should fail")
	}
}

func TestAcceptRelationAlreadyAccepted(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	svc.RequestRelation(alice, bob.ID)
	svc.AcceptRelation(bob, alice.ID)

	if ok, _ := svc.AcceptRelation(bob, alice.ID); ok {
		t.Error("accepting an already-accepted relation should fail")
	}
}

func TestAcceptRelationIgnoresUnrelatedPending(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	carol := createTestUser(t, db, "carol", "carol@example.com")
	dave := createTestUser(t, db, "dave", "dave@example.com")

	// A pending request between an unrelated pair must not satisfy the
	// lookup for this pair.
	if ok, _ := svc.RequestRelation(carol, dave.ID); !ok {
		t.Fatal("unrelated request should succeed")
	}
	if ok, _ := svc.AcceptRelation(bob, alice.ID); ok {
		t.Error("accept must only match the pending request between the two given users")
	}
}

func TestRemoveRelation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	svc.RequestRelation(alice, bob.ID)
	svc.AcceptRelation(bob, alice.ID)

	// Either side may remove the friendship
	ok, err := svc.RemoveRelation(alice, bob.ID)
	if err != nil {
		t.Fatalf("RemoveRelation: %v", err)
	}
	if !ok {
		t.Fatal("removing an accepted relation should succeed")
	}
	if relationBetween(t, db, alice.ID, bob.ID) != nil {
		t.Error("relation should be absent after removal")
	}
}

func TestRemoveRelationNotAccepted(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	svc.RequestRelation(alice, bob.ID)

	if ok, _ := svc.RemoveRelation(alice, bob.ID); ok {
		t.Error("removing a pending relation should fail")
	}
}

func TestBlockRelationAbsentPair(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	ok, err := svc.BlockRelation(alice, bob.ID)
	if err != nil {
		t.Fatalf("BlockRelation: %v", err)
	}
	if !ok {
		t.Fatal("blocking with no prior relation should succeed")
	}

	relation := relationBetween(t, db, alice.ID, bob.ID)
	if relation.Status != models.RelationBlocked {
		t.Errorf("status = %d, want %d (Blocked)", relation.Status, models.RelationBlocked)
	}
	if relation.SenderID != alice.ID {
		t.Errorf("blocker = %d, want %d", relation.SenderID, alice.ID)
	}
}

func TestBlockRelationOverridesPrior(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	svc.RequestRelation(bob, alice.ID)
	svc.AcceptRelation(alice, bob.ID)

	if ok, _ := svc.BlockRelation(alice, bob.ID); !ok {
		t.Fatal("blocking an accepted relation should succeed")
	}

	relation := relationBetween(t, db, alice.ID, bob.ID)
	if relation.Status != models.RelationBlocked {
		t.Errorf("status = %d, want %d (Blocked)", relation.Status, models.RelationBlocked)
	}
	// The record is rewritten so the blocker is the sender
	if relation.SenderID != alice.ID || relation.ReceiverID != bob.ID {
		t.Errorf("relation direction = %d->%d, want %d->%d",
			relation.SenderID, relation.ReceiverID, alice.ID, bob.ID)
	}

	var count int64
	db.Model(&models.Relation{}).Count(&count)
	if count != 1 {
		t.Errorf("relation count = %d, want 1 (single record per pair)", count)
	}
}

func TestBlockRelationSelf(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")

	if ok, _ := svc.BlockRelation(alice, alice.ID); ok {
		t.Error("blocking yourself should fail")
	}
}

func TestUnblockRelation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	svc.BlockRelation(alice, bob.ID)

	ok, err := svc.UnblockRelation(alice, bob.ID)
	if err != nil {
		t.Fatalf("UnblockRelation: %v", err)
	}
	if !ok {
		t.Fatal("the blocker unblocking should succeed")
	}
	if relationBetween(t, db, alice.ID, bob.ID) != nil {
		t.Error("relation should be absent after unblock")
	}

	// The pair is back to absent: a fresh request works again
	if ok, _ := svc.RequestRelation(bob, alice.ID); !ok {
		t.Error("request after unblock should succeed")
	}
}

func TestUnblockRelationByBlocked(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	svc.BlockRelation(alice, bob.ID)

	if ok, _ := svc.UnblockRelation(bob, alice.ID); ok {
		t.Error("the blocked party should not be able to unblock")
	}
}

func TestUnblockRelationNotBlocked(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")

	svc.RequestRelation(alice, bob.ID)

	if ok, _ := svc.UnblockRelation(alice, bob.ID); ok {
		t.Error("unblocking a non-blocked pair should fail")
	}
}

func TestRelationProjections(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestRelationsService(t, db)
	alice := createTestUser(t, db, "alice", "alice@example.com")
	bob := createTestUser(t, db, "bob", "bob@example.com")
	carol := createTestUser(t, db, "carol", "carol@example.com")
	dave := createTestUser(t, db, "dave", "dave@example.com")

	// bob -> alice accepted, alice blocks carol, dave blocks alice
	svc.RequestRelation(bob, alice.ID)
	svc.AcceptRelation(alice, bob.ID)
	svc.BlockRelation(alice, carol.ID)
	svc.BlockRelation(dave, alice.ID)

	friends, err := svc.GetFriends(alice)
	if err != nil {
		t.Fatalf("GetFriends: %v", err)
	}
	if len(friends) != 1 || friends[0].SenderID != bob.ID {
		t.Errorf("GetFriends = %+v, want one relation from bob", friends)
	}

	blocked, err := svc.GetUserBlocked(alice)
	if err != nil {
		t.Fatalf("GetUserBlocked: %v", err)
	}
	if len(blocked) != 1 || blocked[0].ReceiverID != carol.ID {
		t.Errorf("GetUserBlocked = %+v, want one relation to carol", blocked)
	}

	blockedBy, err := svc.GetBlockedUsers(alice)
	if err != nil {
		t.Fatalf("GetBlockedUsers: %v", err)
	}
	if len(blockedBy) != 1 || blockedBy[0].SenderID != dave.ID {
		t.Errorf("GetBlockedUsers = %+v, want one relation from dave", blockedBy)
	}
}
