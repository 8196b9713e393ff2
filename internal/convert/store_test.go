package convert

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/framegeist/framegeist/internal/shared"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	store := NewStore(db)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}

func TestStoreRecordAssignsID(t *testing.T) {
	store := newTestStore(t)

	conv := &Conversion{Kind: shared.MediaKindVideo, Filename: "clip.mp4", Width: 80, FPS: 10, FrameCount: 42}
	if err := store.Record(context.Background(), conv); err != nil {
		t.Fatalf("record: %v", err)
	}
	if !strings.HasPrefix(conv.ID, "conv_") {
		t.Errorf("id %q should have conv_ prefix", conv.ID)
	}
}

func TestStoreRecentNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	older := &Conversion{Kind: shared.MediaKindImage, Filename: "old.png", CreatedAt: now.Add(-time.Hour)}
	newer := &Conversion{Kind: shared.MediaKindVideo, Filename: "new.mp4", CreatedAt: now}
	for _, c := range []*Conversion{older, newer} {
		if err := store.Record(ctx, c); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	list, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d conversions, want 2", len(list))
	}
	if list[0].Filename != "new.mp4" || list[1].Filename != "old.png" {
		t.Errorf("order = %s, %s; want newest first", list[0].Filename, list[1].Filename)
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		conv := &Conversion{Kind: shared.MediaKindImage, CreatedAt: time.Now().Add(time.Duration(i) * time.Second)}
		if err := store.Record(ctx, conv); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	list, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("got %d conversions, want 3", len(list))
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 5 {
		t.Errorf("count = %d, want 5", n)
	}
}
