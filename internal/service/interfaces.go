package service

import (
	"context"
	"os"
	"time"

	"af-restro/internal/domain"
	"af-restro/internal/storage"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Persistence slot names. A slot is one durable JSON document.
const (
	SlotMenuData  = "menu_data"
	SlotAppData   = "app_data"
	SlotCartItems = "cart_items"
)

// SlotStore is the single storage-adapter seam: every backend (file,
// postgres, redis, in-memory) persists whole JSON documents under a
// slot name. Load returns (nil, nil) for a missing slot.
type SlotStore interface {
	Load(slot string) ([]byte, error)
	Save(slot string, data []byte) error
	Delete(slot string) error
}

// MediaStore offloads inline media payloads to the device filesystem
// and hands back the stored filename.
type MediaStore interface {
	SaveMedia(payload, kind string) (string, error)
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, event domain.OrderEvent) error
}

type AnalyticsRecorder interface {
	RecordDishOrder(dishID string, quantity int) error
}

// AnalyticsReader serves the popularity dashboard.
type AnalyticsReader interface {
	TopDishes(limit int) (map[string]float64, error)
}

// QRGenerator encodes arbitrary text as a PNG image.
type QRGenerator interface {
	Generate(data string) ([]byte, error)
}

// CatalogReader is the narrow view of the catalog the cart needs when
// re-pricing a line on a size change.
type CatalogReader interface {
	FindItem(id string) (domain.MenuItem, bool)
	Discounts() []domain.Discount
}

type CatalogServiceInterface interface {
	Load() error
	Items() []domain.MenuItem
	FindItem(id string) (domain.MenuItem, bool)
	AppData() domain.AppData
	Discounts() []domain.Discount
	AddonCategories() []domain.AddonCategory

	AddItem(item domain.MenuItem) (domain.MenuItem, error)
	UpdateItem(item domain.MenuItem) error
	DeleteItemByName(dishName string) error

	AddDiscount(d domain.Discount) error
	DeleteDiscount(id string) error
	AddAddonCategory(c domain.AddonCategory) error
	DeleteAddonCategory(id string) error
	AddOffer(o domain.SpecialOffer) error
	DeleteOffer(id string) error
	AddEvent(e domain.Event) error
	DeleteEvent(id string) error
	AddReview(r domain.Review) error
	DeleteReview(id string) error
	AddAward(a domain.Award) error
	DeleteAward(id string) error
	AddChef(c domain.Chef) error
	DeleteChef(id int) error
	AddBranch(b domain.Branch) error
	DeleteBranch(id int) error
	AddFAQ(f domain.FAQ) error
	DeleteFAQ(id string) error
	SetCategoryOrder(order []string) error
	SetAIEnabled(enabled bool) error

	ReplaceAll(items []domain.MenuItem, patch *domain.AppDataPatch) error
	Reset() error
}

type CartServiceInterface interface {
	Load()
	Lines() []domain.CartLine
	Totals() domain.CartTotals
	Add(item domain.MenuItem, size string, adjusted, original float64, addons []domain.SelectedAddon) domain.CartLine
	UpdateQuantity(cartID string, delta int)
	UpdateSize(cartID, newSize string)
	Remove(cartID string)
	Clear()
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, tableNumber string, now time.Time) (*CheckoutResult, error)
	ConfirmCheckout()
	Receipt(tableNumber string, now time.Time) (string, error)
	CheckoutQR(tableNumber string, now time.Time) ([]byte, error)
}

type BackupServiceInterface interface {
	Export() (string, []byte, error)
	Import(raw []byte) error
}

var (
	_ SlotStore         = (*storage.FileStore)(nil)
	_ SlotStore         = (*storage.MemoryStore)(nil)
	_ SlotStore         = (*storage.RedisStore)(nil)
	_ SlotStore         = (*storage.PostgresStore)(nil)
	_ MediaStore        = (*storage.FileStore)(nil)
	_ OrderPublisher    = (*storage.KafkaPublisher)(nil)
	_ AnalyticsRecorder = (*storage.AnalyticsStore)(nil)
	_ AnalyticsReader   = (*storage.AnalyticsStore)(nil)
)
