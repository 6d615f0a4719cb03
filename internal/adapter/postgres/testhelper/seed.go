package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/closetswap/closetswap-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given starting balance.
func SeedUser(t *testing.T, pool *pgxpool.Pool, points int) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		Role:      domain.UserRoleUser,
		Points:    points,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, points, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.Points, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedAdmin creates a user with the admin role and a zero balance.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	user := SeedUser(t, pool, 0)
	user.Role = domain.UserRoleAdmin

	_, err := pool.Exec(ctx,
		`UPDATE users SET role = $2 WHERE id = $1`,
		user.ID, string(user.Role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin promote: %v", err)
	}

	return user
}

// SeedItem creates an item owned by uploaderID in the given status.
func SeedItem(t *testing.T, pool *pgxpool.Pool, uploaderID uuid.UUID, status domain.ItemStatus, pointValue int) domain.Item {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.Item{
		ID:          uuid.New(),
		UploaderID:  uploaderID,
		Title:       "Test Item " + suffix,
		Description: "Seeded test item",
		Category:    "tops",
		Size:        "M",
		Condition:   "good",
		Tags:        []string{"test"},
		ImageURLs:   []string{"https://example.com/" + suffix + ".jpg"},
		PointValue:  pointValue,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO items (id, uploader_id, title, description, category, size, condition,
		                    tags, image_urls, point_value, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		item.ID, item.UploaderID, item.Title, item.Description, item.Category,
		item.Size, item.Condition, item.Tags, item.ImageURLs,
		item.PointValue, string(item.Status), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}

// SeedSwap creates a swap request in the given status.
func SeedSwap(t *testing.T, pool *pgxpool.Pool, itemID, requesterID, ownerID uuid.UUID, status domain.SwapStatus) domain.SwapRequest {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	sw := domain.SwapRequest{
		ID:          uuid.New(),
		ItemID:      itemID,
		RequesterID: requesterID,
		OwnerID:     ownerID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO swaps (id, item_id, offered_item_id, requester_id, owner_id, message, status, created_at, updated_at)
		 VALUES ($1, $2, NULL, $3, $4, NULL, $5, $6, $7)`,
		sw.ID, sw.ItemID, sw.RequesterID, sw.OwnerID, string(sw.Status), sw.CreatedAt, sw.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSwap insert: %v", err)
	}

	return sw
}
