package mongo

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/core/ports"
)

func userDoc(id primitive.ObjectID, email string) bson.D {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Ann"},
		{Key: "email", Value: email},
		{Key: "passwordHash", Value: "$2a$10$hash"},
		{Key: "role", Value: domain.RoleUser},
		{Key: "createdAt", Value: now},
		{Key: "updatedAt", Value: now},
	}
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewUserRepository(mt.DB)

		u, err := repo.Create(context.Background(), &domain.User{Name: "Ann", Email: "a@b.com", PasswordHash: "h", Role: domain.RoleUser})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(u.ID); err != nil {
			t.Fatalf("expected hex object id, got %q", u.ID)
		}
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: email_1",
		}))
		repo := NewUserRepository(mt.DB)

		_, err := repo.Create(context.Background(), &domain.User{Email: "a@b.com"})
		if !errors.Is(err, domain.ErrUserExists) {
			t.Fatalf("expected ErrUserExists, got %v", err)
		}
	})

	mt.Run("find by email", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "records.users", mtest.FirstBatch, userDoc(id, "a@b.com")))
		repo := NewUserRepository(mt.DB)

		u, err := repo.FindByEmail(context.Background(), "a@b.com")
		if err != nil {
			t.Fatalf("FindByEmail returned error: %v", err)
		}
		if u.ID != id.Hex() || u.PasswordHash != "$2a$10$hash" || u.Role != domain.RoleUser {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	mt.Run("find by email not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "records.users", mtest.FirstBatch))
		repo := NewUserRepository(mt.DB)

		if _, err := repo.FindByEmail(context.Background(), "ghost@b.com"); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("find by malformed id", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		if _, err := repo.FindByID(context.Background(), "not-an-object-id"); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("update returns document after", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		doc := userDoc(id, "a@b.com")
		doc[1] = bson.E{Key: "name", Value: "Annie"}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: doc}))
		repo := NewUserRepository(mt.DB)

		name := "Annie"
		u, err := repo.Update(context.Background(), id.Hex(), ports.UserChanges{Name: &name, UpdatedAt: time.Now()})
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if u.Name != "Annie" || u.Email != "a@b.com" {
			t.Fatalf("unexpected user: %+v", u)
		}
	})

	mt.Run("update missing user", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))
		repo := NewUserRepository(mt.DB)

		name := "Annie"
		if _, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), ports.UserChanges{Name: &name}); !errors.Is(err, domain.ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))
		repo := NewUserRepository(mt.DB)

		n, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())
		if err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if n != 1 {
			t.Fatalf("expected 1 deleted, got %d", n)
		}
	})
}
