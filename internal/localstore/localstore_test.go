package localstore

import (
	"os"
	"testing"
	"time"

	"github.com/nzoschke/productivity/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		s := New[model.Task](t.TempDir(), KeyTasks)
		items := s.Get()
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("set then get", func(t *testing.T) {
		s := New[model.Task](t.TempDir(), KeyTasks)
		created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
		require.NoError(t, s.Set([]model.Task{{ID: "1", Text: "write", CreatedAt: created}}))

		items := s.Get()
		require.Len(t, items, 1)
		assert.Equal(t, "write", items[0].Text)
		assert.True(t, created.Equal(items[0].CreatedAt))
	})

	t.Run("set empty", func(t *testing.T) {
		s := New[model.Note](t.TempDir(), KeyNotes)
		require.NoError(t, s.Set([]model.Note{{ID: "1"}}))
		require.NoError(t, s.Set([]model.Note{}))
		assert.Empty(t, s.Get())

		require.NoError(t, s.Set(nil))
		assert.NotNil(t, s.Get())
	})

	t.Run("corrupt file", func(t *testing.T) {
		s := New[model.Book](t.TempDir(), KeyBooks)
		require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0644))
		assert.Empty(t, s.Get())
	})

	t.Run("last writer wins", func(t *testing.T) {
		dir := t.TempDir()
		a := New[model.PrayerDay](dir, KeyPrayers)
		b := New[model.PrayerDay](dir, KeyPrayers)
		require.NoError(t, a.Set([]model.PrayerDay{model.NewPrayerDay("2024-01-01")}))
		require.NoError(t, b.Set([]model.PrayerDay{model.NewPrayerDay("2024-01-02")}))

		items := a.Get()
		require.Len(t, items, 1)
		assert.Equal(t, "2024-01-02", items[0].Date)
	})
}
