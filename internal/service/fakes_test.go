package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/model"
)

// fakeRepo records calls and fails every one of them while err is set.
type fakeRepo[T Entity, P any] struct {
	mu      sync.Mutex
	items   []T
	err     error
	created []T
	updated map[string]P
	deleted []string
}

func newFakeRepo[T Entity, P any](items ...T) *fakeRepo[T, P] {
	return &fakeRepo[T, P]{items: items, updated: map[string]P{}}
}

func (r *fakeRepo[T, P]) All(ctx context.Context) ([]T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return append([]T(nil), r.items...), nil
}

func (r *fakeRepo[T, P]) Create(ctx context.Context, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, item)
	return nil
}

func (r *fakeRepo[T, P]) Update(ctx context.Context, id string, patch P) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.updated[id] = patch
	return nil
}

func (r *fakeRepo[T, P]) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeRepo[T, P]) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

type fakePrayerRepo struct {
	mu    sync.Mutex
	days  map[string]model.PrayerDay
	err   error
	calls int
}

func (r *fakePrayerRepo) All(ctx context.Context) ([]model.PrayerDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var days []model.PrayerDay
	for _, d := range r.days {
		days = append(days, d)
	}
	return days, nil
}

func (r *fakePrayerRepo) Upsert(ctx context.Context, day model.PrayerDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.err != nil {
		return r.err
	}
	if r.days == nil {
		r.days = map[string]model.PrayerDay{}
	}
	r.days[day.Date] = day
	return nil
}

var testNow = time.Date(2024, 5, 15, 9, 30, 0, 0, time.UTC)

func store[T any](t *testing.T, key string) *localstore.Store[T] {
	t.Helper()
	return localstore.New[T](t.TempDir(), key)
}
