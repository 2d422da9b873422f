package service

import (
	"context"
	"time"

	"github.com/safwannuddin/Schedule-tracker/internal/repo"
)

// testEnv wires the three services over a shared in-memory store, the same
// way routes.go wires them over Postgres. newTestEnv passes a nil cache so
// behavior tests see the store directly; the cached read path and
// invalidation-on-write are covered in grid_cache_test.go via
// newCachedTestEnv.
type testEnv struct {
	store    *repo.MemStore
	weeks    *WeekService
	items    *ItemService
	checks   *CheckService
	itemRepo repo.ItemRepo

	checkRepo repo.CheckRepo
}

func newTestEnv() *testEnv {
	return newCachedTestEnv(nil)
}

func newCachedTestEnv(c GridCache) *testEnv {
	store := repo.NewMemStore()
	weekRepo := repo.NewMemWeekRepo(store)
	itemRepo := repo.NewMemItemRepo(store)
	checkRepo := repo.NewMemCheckRepo(store)
	return &testEnv{
		store:     store,
		weeks:     NewWeekService(weekRepo, itemRepo, checkRepo, c),
		items:     NewItemService(weekRepo, itemRepo, c),
		checks:    NewCheckService(itemRepo, checkRepo, c),
		itemRepo:  itemRepo,
		checkRepo: checkRepo,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var ctx = context.Background()
