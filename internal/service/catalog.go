package service

import (
	"encoding/json"
	"errors"
	"sync"

	"af-restro/internal/domain"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrItemNotFound  = errors.New("menu item not found")
	ErrEntryNotFound = errors.New("entry not found")
)

// CatalogService owns the admin-editable state: the menu items and the
// settings document. It follows an explicit load/mutate/persist cycle;
// writes to the slot store are suppressed until the initial load has
// completed, and write failures are logged without rolling back the
// in-memory state.
type CatalogService struct {
	store SlotStore
	media MediaStore
	node  *snowflake.Node

	mu     sync.RWMutex
	items  []domain.MenuItem
	app    domain.AppData
	loaded bool
}

func NewCatalogService(store SlotStore, media MediaStore, node *snowflake.Node) *CatalogService {
	return &CatalogService{store: store, media: media, node: node}
}

// menuDocument accepts both shapes the menu slot has been written in:
// a bare item array or an {items: [...]} envelope.
func decodeMenuDocument(raw []byte) []domain.MenuItem {
	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}
	var envelope struct {
		Items []domain.MenuItem `json:"items"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		return envelope.Items
	}
	return nil
}

// Load hydrates the catalog from the menu and settings slots, seeding
// defaults where a slot is absent or unreadable.
func (s *CatalogService) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = domain.SeedMenu()
	s.app = domain.SeedAppData()

	if raw, err := s.store.Load(SlotMenuData); err != nil {
		logger.Warn().Err(err).Msg("failed to read menu slot, using defaults")
	} else if len(raw) > 0 {
		if items := decodeMenuDocument(raw); len(items) > 0 {
			s.items = items
		}
	}

	if raw, err := s.store.Load(SlotAppData); err != nil {
		logger.Warn().Err(err).Msg("failed to read settings slot, using defaults")
	} else if len(raw) > 0 {
		var patch domain.AppDataPatch
		if err := json.Unmarshal(raw, &patch); err != nil {
			logger.Warn().Err(err).Msg("corrupt settings slot, using defaults")
		} else {
			patch.ApplyTo(&s.app)
		}
	}

	s.loaded = true
	logger.Info().Int("items", len(s.items)).Msg("catalog loaded")
	return nil
}

// persistMenu and persistApp are best-effort: a storage failure weakens
// durability but never loses the in-memory state.
func (s *CatalogService) persistMenu() {
	if !s.loaded {
		return
	}
	data, _ := json.MarshalIndent(s.items, "", "  ")
	if err := s.store.Save(SlotMenuData, data); err != nil {
		logger.Warn().Err(err).Msg("failed to persist menu slot")
	}
}

func (s *CatalogService) persistApp() {
	if !s.loaded {
		return
	}
	data, _ := json.MarshalIndent(s.app, "", "  ")
	if err := s.store.Save(SlotAppData, data); err != nil {
		logger.Warn().Err(err).Msg("failed to persist settings slot")
	}
}

func (s *CatalogService) offload(payload, kind string) string {
	if s.media == nil {
		return payload
	}
	stored, err := s.media.SaveMedia(payload, kind)
	if err != nil {
		logger.Warn().Err(err).Msg("media offload failed, keeping inline reference")
		return payload
	}
	return stored
}

func (s *CatalogService) Items() []domain.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.MenuItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *CatalogService) FindItem(id string) (domain.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.MenuItem{}, false
}

func (s *CatalogService) AppData() domain.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.app
}

func (s *CatalogService) Discounts() []domain.Discount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	discounts := make([]domain.Discount, len(s.app.Discounts))
	copy(discounts, s.app.Discounts)
	return discounts
}

func (s *CatalogService) AddonCategories() []domain.AddonCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cats := make([]domain.AddonCategory, len(s.app.AddonCategories))
	copy(cats, s.app.AddonCategories)
	return cats
}

func (s *CatalogService) AddItem(item domain.MenuItem) (domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.DishName == "" || item.Category == "" {
		return domain.MenuItem{}, errors.New("dish name and category are required")
	}

	item.ID = s.node.Generate().String()
	item.PhotoLink = s.offload(item.PhotoLink, "image")
	item.VideoLink = s.offload(item.VideoLink, "video")

	s.items = append(s.items, item)
	s.persistMenu()
	return item, nil
}

func (s *CatalogService) UpdateItem(item domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			item.PhotoLink = s.offload(item.PhotoLink, "image")
			item.VideoLink = s.offload(item.VideoLink, "video")
			s.items[i] = item
			s.persistMenu()
			return nil
		}
	}
	return ErrItemNotFound
}

// DeleteItemByName removes every item carrying the given dish name.
func (s *CatalogService) DeleteItemByName(dishName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.DishName != dishName {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(s.items) {
		return ErrItemNotFound
	}
	s.items = kept
	s.persistMenu()
	return nil
}

func (s *CatalogService) AddDiscount(d domain.Discount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == "" {
		d.ID = s.node.Generate().String()
	}
	s.app.Discounts = append(s.app.Discounts, d)
	s.persistApp()
	return nil
}

func (s *CatalogService) DeleteDiscount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.app.Discounts[:0]
	for _, d := range s.app.Discounts {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(s.app.Discounts) {
		return ErrEntryNotFound
	}
	s.app.Discounts = kept
	s.persistApp()
	return nil
}

func (s *CatalogService) AddAddonCategory(c domain.AddonCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = s.node.Generate().String()
	}
	s.app.AddonCategories = append(s.app.AddonCategories, c)
	s.persistApp()
	return nil
}

func (s *CatalogService) DeleteAddonCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.app.AddonCategories[:0]
	for _, c := range s.app.AddonCategories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(s.app.AddonCategories) {
		return ErrEntryNotFound
	}
	s.app.AddonCategories = kept
	s.persistApp()
	return nil
}

func (s *CatalogService) AddOffer(o domain.SpecialOffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == "" {
		o.ID = s.node.Generate().String()
	}
	o.Image = s.offload(o.Image, "image")
	s.app.Offers = append(s.app.Offers, o)
	s.persistApp()
	return nil
}

func (s *CatalogService) DeleteOffer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.app.Offers[:0]
	for _, o := range s.app.Offers {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(s.app.Offers) {
		return ErrEntryNotFound
	}
	s.app.Offers = kept
	s.persistApp()
	return nil
}

func (s *CatalogService) AddEvent(e domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = s.node.Generate().String()
	}
	e.Image = s.offload(e.Image, "image")
	s.app.Events = append(s.app.Events, e)
	s.persistApp()
	return nil
}

func (s *CatalogService) DeleteEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.app.Events[:0]
	for _, e := range s.app.Events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.app.Events) {
		return ErrEntryNotFound
	}
	s.app.Events = kept
	s.persistApp()
	return nil
}

func (s *CatalogService) AddReview(r domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = s.node.Generate().String()
	}
	s.app.Reviews = append(s.app.Reviews, r)
	s.persistApp()
	return nil
}

func (s *CatalogService) DeleteReview(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.app.Reviews[:0]
	for _, r := range s.app.Reviews {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(s.app.Reviews) {
		return ErrEntryNotFound
	}
	s.app.Reviews = kept
	s.persistApp()
	return nil
}

func (s *CatalogService) AddAward(a domain.Award) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = s.node.Generate().String()
	}
	s.app.Awards = append(s.app.Awards, a)
	s.persistApp()
	return nil
}

func (s *CatalogService) DeleteAward(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.app.Awards[:0]
	for _, a := range s.app.Awards {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(s.app.Awards) {
		return ErrEntryNotFound
	}
	s.app.Awards = kept
	s.persistApp()
	return nil
}

func (s *CatalogService) AddChef(c domain.Chef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.nextChefID()
	}
	c.Image = s.offload(c.Image, "image")
	s.app.Chefs = append(s.app.Chefs, c)
	s.persistApp()
	return nil
}

func (s *CatalogService) nextChefID() int {
	next := 1
	for _, c := range s.app.Chefs {
		if c.ID >= next {
			next = c.ID + 1
		}
	}
	return next
}

func (s *CatalogService) DeleteChef(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.app.Chefs[:0]
	for _, c := range s.app.Chefs {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(s.app.Chefs) {
		return ErrEntryNotFound
	}
	s.app.Chefs = kept
	s.persistApp()
	return nil
}

func (s *CatalogService) AddBranch(b domain.Branch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == 0 {
		next := 1
		for _, existing := range s.app.Branches {
			if existing.ID >= next {
				next = existing.ID + 1
			}
		}
		b.ID = next
	}
	b.MapImage = s.offload(b.MapImage, "image")
	s.app.Branches = append(s.app.Branches, b)
	s.persistApp()
	return nil
}

func (s *CatalogService) DeleteBranch(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.app.Branches[:0]
	for _, b := range s.app.Branches {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(s.app.Branches) {
		return ErrEntryNotFound
	}
	s.app.Branches = kept
	s.persistApp()
	return nil
}

func (s *CatalogService) AddFAQ(f domain.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.ID == "" {
		f.ID = s.node.Generate().String()
	}
	s.app.FAQs = append(s.app.FAQs, f)
	s.persistApp()
	return nil
}

func (s *CatalogService) DeleteFAQ(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.app.FAQs[:0]
	for _, f := range s.app.FAQs {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(s.app.FAQs) {
		return ErrEntryNotFound
	}
	s.app.FAQs = kept
	s.persistApp()
	return nil
}

func (s *CatalogService) SetCategoryOrder(order []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app.CategoryOrder = order
	s.persistApp()
	return nil
}

func (s *CatalogService) SetAIEnabled(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app.IsAiEnabled = enabled
	s.persistApp()
	return nil
}

// ReplaceAll swaps the whole catalog for imported state. Inline media in
// the imported documents is offloaded the same way interactive edits
// offload it.
func (s *CatalogService) ReplaceAll(items []domain.MenuItem, patch *domain.AppDataPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range items {
		items[i].PhotoLink = s.offload(items[i].PhotoLink, "image")
		items[i].VideoLink = s.offload(items[i].VideoLink, "video")
	}
	s.items = items

	if patch != nil {
		for i := range patch.Chefs {
			patch.Chefs[i].Image = s.offload(patch.Chefs[i].Image, "image")
		}
		for i := range patch.Events {
			patch.Events[i].Image = s.offload(patch.Events[i].Image, "image")
		}
		for i := range patch.Offers {
			patch.Offers[i].Image = s.offload(patch.Offers[i].Image, "image")
		}
		for i := range patch.Branches {
			patch.Branches[i].MapImage = s.offload(patch.Branches[i].MapImage, "image")
		}
		patch.ApplyTo(&s.app)
	}

	s.persistMenu()
	s.persistApp()
	return nil
}

// Reset drops the persisted slots and restores the factory defaults.
func (s *CatalogService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(SlotMenuData); err != nil {
		logger.Warn().Err(err).Msg("failed to delete menu slot")
	}
	if err := s.store.Delete(SlotAppData); err != nil {
		logger.Warn().Err(err).Msg("failed to delete settings slot")
	}
	s.items = domain.SeedMenu()
	s.app = domain.SeedAppData()
	return nil
}

var (
	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ CatalogReader           = (*CatalogService)(nil)
)
