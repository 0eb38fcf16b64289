package tests

import (
	"os"
	"path/filepath"
	"testing"

	"af-restro/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestFileStore_SlotLifecycle(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	data, err := store.Load("menu_data")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, store.Save("menu_data", []byte(`[{"id":"1"}]`)))

	data, err = store.Load("menu_data")
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	assert.NoError(t, store.Delete("menu_data"))
	assert.NoError(t, store.Delete("menu_data"))

	data, err = store.Load("menu_data")
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestFileStore_SaveMedia(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	assert.NoError(t, err)

	// base64 for "fake image bytes"
	filename, err := store.SaveMedia("data:image/jpeg;base64,ZmFrZSBpbWFnZSBieXRlcw==", "image")
	assert.NoError(t, err)
	assert.Contains(t, filename, ".jpg")

	stored, err := os.ReadFile(filepath.Join(dir, filename))
	assert.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(stored))
}

func TestFileStore_SaveMediaPassthrough(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	assert.NoError(t, err)

	url, err := store.SaveMedia("https://example.com/pic.jpg", "image")
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/pic.jpg", url)

	_, err = store.SaveMedia("data:image/jpeg;base64,%%%notbase64", "image")
	assert.Error(t, err)
}

func TestMediaFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/var/data/media/1700_1.jpg", "1700_1.jpg"},
		{"media\\1700_1.jpg", "1700_1.jpg"},
		{"1700_1.jpg", "1700_1.jpg"},
		{"https://example.com/a/b.jpg", "https://example.com/a/b.jpg"},
		{"data:image/jpeg;base64,AAAA", "data:image/jpeg;base64,AAAA"},
		{"", ""},
	}
	for _, testCase := range tests {
		assert.Equal(t, testCase.want, storage.MediaFileName(testCase.in), "input %q", testCase.in)
	}
}

func TestMemoryStore_CopiesOnReadAndWrite(t *testing.T) {
	store := storage.NewMemoryStore()

	payload := []byte(`{"a":1}`)
	assert.NoError(t, store.Save("app_data", payload))
	payload[0] = 'x'

	data, err := store.Load("app_data")
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	data[0] = 'x'
	again, _ := store.Load("app_data")
	assert.Equal(t, `{"a":1}`, string(again))
}

func TestPostgresStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	store := storage.NewPostgresStore(db)

	t.Run("ensure_schema", func(t *testing.T) {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS slots").WillReturnResult(sqlmock.NewResult(0, 0))
		assert.NoError(t, store.EnsureSchema())
	})

	t.Run("load_hit", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"value"}).AddRow(`[{"id":"1"}]`)
		mock.ExpectQuery("SELECT value FROM slots WHERE key").WithArgs("menu_data").WillReturnRows(rows)

		data, err := store.Load("menu_data")
		assert.NoError(t, err)
		assert.Equal(t, `[{"id":"1"}]`, string(data))
	})

	t.Run("load_miss", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM slots WHERE key").WithArgs("cart_items").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		data, err := store.Load("cart_items")
		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("save_upsert", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO slots").WithArgs("app_data", `{"isAiEnabled":true}`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, store.Save("app_data", []byte(`{"isAiEnabled":true}`)))
	})

	t.Run("delete", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM slots WHERE key").WithArgs("app_data").
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, store.Delete("app_data"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	server := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: server.Addr()})
}

func TestRedisStore(t *testing.T) {
	store := storage.NewRedisStore(newTestRedis(t))

	data, err := store.Load("menu_data")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, store.Save("menu_data", []byte(`[{"id":"1"}]`)))

	data, err = store.Load("menu_data")
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	assert.NoError(t, store.Delete("menu_data"))
	data, err = store.Load("menu_data")
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestAnalyticsStore(t *testing.T) {
	analytics := storage.NewAnalyticsStore(newTestRedis(t))

	assert.NoError(t, analytics.RecordDishOrder("dish-1", 2))
	assert.NoError(t, analytics.RecordDishOrder("dish-2", 1))
	assert.NoError(t, analytics.RecordDishOrder("dish-1", 3))

	top, err := analytics.TopDishes(10)
	assert.NoError(t, err)
	assert.Equal(t, 5.0, top["dish-1"])
	assert.Equal(t, 1.0, top["dish-2"])
}
