package tests

import (
	"encoding/json"
	"testing"

	"af-restro/internal/domain"
	"af-restro/internal/mocks"
	"af-restro/internal/service"
	"af-restro/internal/storage"

	"github.com/stretchr/testify/assert"
)

func newTestCatalog(t *testing.T) (*service.CatalogService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	catalog := service.NewCatalogService(store, nil, newTestNode(t))
	assert.NoError(t, catalog.Load())
	return catalog, store
}

func TestCatalogService_LoadSeedsDefaults(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	items := catalog.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "Veg Platter", items[0].DishName)

	app := catalog.AppData()
	assert.True(t, app.IsAiEnabled)
	assert.Len(t, app.Discounts, 1)
	assert.Equal(t, "Grills & Kebabs", app.Discounts[0].Category)
}

func TestCatalogService_LoadPrefersStoredSlots(t *testing.T) {
	store := storage.NewMemoryStore()
	stored := []domain.MenuItem{{ID: "9", DishName: "Stored Dish", Category: "Biryani", Price: 45}}
	data, _ := json.Marshal(stored)
	assert.NoError(t, store.Save(service.SlotMenuData, data))

	catalog := service.NewCatalogService(store, nil, newTestNode(t))
	assert.NoError(t, catalog.Load())

	items := catalog.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, "Stored Dish", items[0].DishName)
}

func TestCatalogService_LoadAcceptsEnvelopeMenu(t *testing.T) {
	store := storage.NewMemoryStore()
	assert.NoError(t, store.Save(service.SlotMenuData,
		[]byte(`{"items":[{"id":"9","dish_name":"Enveloped","category":"Biryani","price":45}]}`)))

	catalog := service.NewCatalogService(store, nil, newTestNode(t))
	assert.NoError(t, catalog.Load())
	assert.Equal(t, "Enveloped", catalog.Items()[0].DishName)
}

func TestCatalogService_AddItem(t *testing.T) {
	catalog, store := newTestCatalog(t)

	created, err := catalog.AddItem(domain.MenuItem{DishName: "Butter Chicken", Category: "Curries", Price: 38})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, ok := catalog.FindItem(created.ID)
	assert.True(t, ok)
	assert.Equal(t, "Butter Chicken", found.DishName)

	raw, err := store.Load(service.SlotMenuData)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "Butter Chicken")
}

func TestCatalogService_AddItemValidation(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	_, err := catalog.AddItem(domain.MenuItem{Category: "Curries"})
	assert.Error(t, err)

	_, err = catalog.AddItem(domain.MenuItem{DishName: "No Category"})
	assert.Error(t, err)
}

func TestCatalogService_AddItemOffloadsInlineMedia(t *testing.T) {
	store := storage.NewMemoryStore()
	media := mocks.NewMediaStore(t)
	catalog := service.NewCatalogService(store, media, newTestNode(t))
	assert.NoError(t, catalog.Load())

	media.On("SaveMedia", "data:image/jpeg;base64,AAAA", "image").Return("123_1.jpg", nil).Once()
	media.On("SaveMedia", "", "video").Return("", nil).Once()

	created, err := catalog.AddItem(domain.MenuItem{
		DishName: "Seekh Kabab", Category: "Grills & Kebabs", Price: 32,
		PhotoLink: "data:image/jpeg;base64,AAAA",
	})
	assert.NoError(t, err)
	assert.Equal(t, "123_1.jpg", created.PhotoLink)
}

func TestCatalogService_UpdateItem(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	item, _ := catalog.FindItem("1")
	item.Price = 64.99
	assert.NoError(t, catalog.UpdateItem(item))

	updated, _ := catalog.FindItem("1")
	assert.Equal(t, 64.99, updated.Price)

	assert.ErrorIs(t, catalog.UpdateItem(domain.MenuItem{ID: "missing"}), service.ErrItemNotFound)
}

func TestCatalogService_DeleteItemByName(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	assert.NoError(t, catalog.DeleteItemByName("Veg Platter"))
	assert.Len(t, catalog.Items(), 1)

	assert.ErrorIs(t, catalog.DeleteItemByName("Veg Platter"), service.ErrItemNotFound)
}

func TestCatalogService_DiscountLifecycle(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	assert.NoError(t, catalog.AddDiscount(domain.Discount{Category: "Biryani", Percentage: 10, Type: domain.DiscountFlat}))
	discounts := catalog.Discounts()
	assert.Len(t, discounts, 2)
	assert.NotEmpty(t, discounts[1].ID)

	assert.NoError(t, catalog.DeleteDiscount(discounts[1].ID))
	assert.Len(t, catalog.Discounts(), 1)
	assert.ErrorIs(t, catalog.DeleteDiscount("missing"), service.ErrEntryNotFound)
}

func TestCatalogService_ChefAndBranchIDs(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	assert.NoError(t, catalog.AddChef(domain.Chef{Name: "New Chef", Role: "Sous Chef"}))
	app := catalog.AppData()
	assert.Equal(t, 3, app.Chefs[len(app.Chefs)-1].ID)

	assert.NoError(t, catalog.AddBranch(domain.Branch{Name: "Airport Branch"}))
	app = catalog.AppData()
	assert.Equal(t, 3, app.Branches[len(app.Branches)-1].ID)
}

func TestCatalogService_SettingsToggles(t *testing.T) {
	catalog, store := newTestCatalog(t)

	assert.NoError(t, catalog.SetAIEnabled(false))
	assert.False(t, catalog.AppData().IsAiEnabled)

	assert.NoError(t, catalog.SetCategoryOrder([]string{"Biryani", "Chef Special"}))
	assert.Equal(t, []string{"Biryani", "Chef Special"}, catalog.AppData().CategoryOrder)

	raw, err := store.Load(service.SlotAppData)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), "Biryani")
}

func TestCatalogService_Reset(t *testing.T) {
	catalog, store := newTestCatalog(t)

	_, err := catalog.AddItem(domain.MenuItem{DishName: "Extra Dish", Category: "Curries", Price: 20})
	assert.NoError(t, err)
	assert.NoError(t, catalog.SetAIEnabled(false))

	assert.NoError(t, catalog.Reset())

	assert.Len(t, catalog.Items(), 2)
	assert.True(t, catalog.AppData().IsAiEnabled)

	raw, err := store.Load(service.SlotMenuData)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "Extra Dish")
}

func TestCatalogService_ReplaceAll(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	enabled := false
	patch := &domain.AppDataPatch{
		Discounts:   []domain.Discount{{ID: "d9", Category: "Curries", Percentage: 15, Type: domain.DiscountFlat}},
		IsAiEnabled: &enabled,
	}
	items := []domain.MenuItem{{ID: "n1", DishName: "Imported Dish", Category: "Curries", Price: 30}}

	assert.NoError(t, catalog.ReplaceAll(items, patch))

	assert.Len(t, catalog.Items(), 1)
	app := catalog.AppData()
	assert.False(t, app.IsAiEnabled)
	assert.Equal(t, "Curries", app.Discounts[0].Category)
	// Fields absent from the patch keep their current values.
	assert.Len(t, app.Chefs, 2)
}
