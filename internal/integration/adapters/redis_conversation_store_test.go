package adapters

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func newTestStore(t *testing.T) *RedisConversationStore {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &RedisConversationStore{client: client}
}

func TestRedisConversationStore_AppendAndRecent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	user := entity.NewChatMessage(entity.ChatRoleUser, "how much did I spend?", "")
	assistant := entity.NewChatMessage(entity.ChatRoleAssistant, "You spent $120.", entity.AgentExpenseAnalysis)

	if err := store.Append(ctx, user); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := store.Append(ctx, assistant); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	messages, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != entity.ChatRoleUser || messages[0].Content != "how much did I spend?" {
		t.Error("expected the user turn first")
	}
	if messages[1].AgentType != entity.AgentExpenseAnalysis {
		t.Errorf("agent label lost in round-trip, got %s", messages[1].AgentType)
	}
	if messages[0].ID != user.ID {
		t.Error("message id lost in round-trip")
	}
}

func TestRedisConversationStore_RecentHonorsLimit(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for i := 0; i < 9; i++ {
		msg := entity.NewChatMessage(entity.ChatRoleUser, fmt.Sprintf("message %d", i), "")
		if err := store.Append(ctx, msg); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	messages, err := store.Recent(ctx, 4)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(messages))
	}
	if messages[0].Content != "message 5" || messages[3].Content != "message 8" {
		t.Error("expected the newest 4 messages, oldest first")
	}
}

func TestRedisConversationStore_CapEvictsOldest(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for i := 0; i < conversationCap+5; i++ {
		msg := entity.NewChatMessage(entity.ChatRoleUser, fmt.Sprintf("message %d", i), "")
		if err := store.Append(ctx, msg); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	messages, err := store.Recent(ctx, conversationCap*2)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(messages) != conversationCap {
		t.Fatalf("expected list capped at %d, got %d", conversationCap, len(messages))
	}
	if messages[0].Content != "message 5" {
		t.Errorf("expected oldest surviving message to be message 5, got %q", messages[0].Content)
	}
}

func TestRedisConversationStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.Append(ctx, entity.NewChatMessage(entity.ChatRoleUser, "hi", "")); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	messages, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("expected empty conversation after clear, got %d", len(messages))
	}
}
