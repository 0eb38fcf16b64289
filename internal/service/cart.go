package service

import (
	"encoding/json"
	"sync"
	"time"

	"af-restro/internal/domain"
	"af-restro/internal/pricing"

	"github.com/bwmarrin/snowflake"
)

// CartService is the cart aggregate. Line prices are locked in when a
// line is added and only ever recomputed on an explicit size change;
// quantity changes and later discount edits never touch stored prices.
// Every mutation is flushed to the cart slot best-effort.
type CartService struct {
	store   SlotStore
	catalog CatalogReader
	node    *snowflake.Node

	mu    sync.Mutex
	lines []domain.CartLine
}

func NewCartService(store SlotStore, catalog CatalogReader, node *snowflake.Node) *CartService {
	return &CartService{store: store, catalog: catalog, node: node}
}

// Load rehydrates the cart from its slot. A missing or corrupt slot
// means an empty cart, never an error.
func (s *CartService) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Load(SlotCartItems)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read cart slot, starting empty")
		return
	}
	if len(raw) == 0 {
		return
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		logger.Warn().Err(err).Msg("corrupt cart slot, starting empty")
		return
	}
	s.lines = lines
}

func (s *CartService) persist() {
	data, _ := json.Marshal(s.lines)
	if err := s.store.Save(SlotCartItems, data); err != nil {
		logger.Warn().Err(err).Msg("failed to persist cart slot")
	}
}

func (s *CartService) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

func (s *CartService) Totals() domain.CartTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Totals(s.lines)
}

// addonsKey serializes an add-on selection for line-identity matching.
// An empty selection always serializes to "[]".
func addonsKey(addons []domain.SelectedAddon) string {
	if len(addons) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(addons)
	return string(data)
}

// Add merges into an existing line when item, size and add-on selection
// all match, bumping the quantity without re-pricing. Otherwise a new
// line is created with quantity 1, storing the supplied unit prices
// verbatim.
func (s *CartService) Add(item domain.MenuItem, size string, adjusted, original float64, addons []domain.SelectedAddon) domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := addonsKey(addons)
	for i := range s.lines {
		if s.lines[i].ID == item.ID && s.lines[i].Size == size && addonsKey(s.lines[i].SelectedAddons) == key {
			s.lines[i].Quantity++
			s.persist()
			return s.lines[i]
		}
	}

	if original == 0 {
		original = adjusted
	}
	line := domain.CartLine{
		MenuItem:       item,
		CartID:         s.node.Generate().String(),
		Quantity:       1,
		Size:           size,
		AdjustedPrice:  adjusted,
		OriginalPrice:  original,
		SelectedAddons: addons,
	}
	s.lines = append(s.lines, line)
	s.persist()
	return line
}

// UpdateQuantity clamps at zero; a line reaching zero is removed.
func (s *CartService) UpdateQuantity(cartID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.CartID == cartID {
			line.Quantity += delta
			if line.Quantity < 0 {
				line.Quantity = 0
			}
		}
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.persist()
}

// UpdateSize re-prices the line against the current catalog item and
// the discount window as of now, not as of add time. If the base item
// has been deleted from the catalog the update is a no-op.
func (s *CartService) UpdateSize(cartID, newSize string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].CartID != cartID {
			continue
		}
		baseItem, ok := s.catalog.FindItem(s.lines[i].ID)
		if !ok {
			return
		}
		price := pricing.PriceLine(baseItem, newSize, s.lines[i].SelectedAddons, s.catalog.Discounts(), time.Now())
		s.lines[i].Size = newSize
		s.lines[i].AdjustedPrice = price.Adjusted
		s.lines[i].OriginalPrice = price.Original
		s.persist()
		return
	}
}

func (s *CartService) Remove(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.CartID != cartID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.persist()
}

func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist()
}

var _ CartServiceInterface = (*CartService)(nil)
