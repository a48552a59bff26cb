package storage

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/burrow/internal/domain"
)

func entry(id string) domain.HistoryEntry {
	return domain.HistoryEntry{ID: id, Draft: domain.Draft{Method: "GET", URL: "http://example.com/" + id}}
}

func TestMemoryRepository_NewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	require.NoError(t, repo.AddHistoryEntry(entry("a")))
	require.NoError(t, repo.AddHistoryEntry(entry("b")))
	require.NoError(t, repo.AddHistoryEntry(entry("c")))

	all, err := repo.GetHistory(0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[2].ID)

	limited, err := repo.GetHistory(2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, "b", limited[1].ID)
}

func TestMemoryRepository_Limit(t *testing.T) {
	repo := NewMemoryRepository()
	for i := 0; i < maxHistory+5; i++ {
		require.NoError(t, repo.AddHistoryEntry(entry(fmt.Sprint(i))))
	}

	all, err := repo.GetHistory(0)
	require.NoError(t, err)
	assert.Len(t, all, maxHistory)
	assert.Equal(t, fmt.Sprint(maxHistory+4), all[0].ID)
}

func TestMemoryRepository_ReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	require.NoError(t, repo.AddHistoryEntry(entry("a")))

	all, _ := repo.GetHistory(0)
	all[0].ID = "mutated"

	again, _ := repo.GetHistory(0)
	assert.Equal(t, "a", again[0].ID)
}

func TestMemoryRepository_GetAndDelete(t *testing.T) {
	repo := NewMemoryRepository()
	require.NoError(t, repo.AddHistoryEntry(entry("a")))
	require.NoError(t, repo.AddHistoryEntry(entry("b")))

	got, err := repo.GetHistoryEntry("a")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a", got.Draft.URL)

	require.NoError(t, repo.DeleteHistoryEntry("a"))
	_, err = repo.GetHistoryEntry("a")
	assert.Error(t, err)
	assert.Error(t, repo.DeleteHistoryEntry("a"))

	require.NoError(t, repo.ClearHistory())
	all, err := repo.GetHistory(0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryRepository_Concurrent(t *testing.T) {
	repo := NewMemoryRepository()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.AddHistoryEntry(entry(fmt.Sprint(i)))
			_, _ = repo.GetHistory(5)
		}(i)
	}
	wg.Wait()

	all, err := repo.GetHistory(0)
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
