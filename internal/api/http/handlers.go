package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"af-restro/internal/domain"
	"af-restro/internal/pricing"
	"af-restro/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Catalog   service.CatalogServiceInterface
	Cart      service.CartServiceInterface
	Orders    service.OrderServiceInterface
	Backup    service.BackupServiceInterface
	Analytics service.AnalyticsReader
	AdminPIN  string
}

func NewHandler(catalog service.CatalogServiceInterface, cart service.CartServiceInterface, orders service.OrderServiceInterface, backup service.BackupServiceInterface, analytics service.AnalyticsReader, adminPIN string) *Handler {
	return &Handler{
		Catalog:   catalog,
		Cart:      cart,
		Orders:    orders,
		Backup:    backup,
		Analytics: analytics,
		AdminPIN:  adminPIN,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/api/appdata", h.getAppData).Methods("GET")
	r.HandleFunc("/api/addon-categories", h.getAddonCategories).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{cartId}/quantity", h.updateCartQuantity).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{cartId}/size", h.updateCartSize).Methods("PATCH")
	r.HandleFunc("/api/cart/items/{cartId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")

	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/checkout/confirm", h.confirmCheckout).Methods("POST")
	r.HandleFunc("/api/checkout/qrcode", h.checkoutQRCode).Methods("GET")
	r.HandleFunc("/api/receipt", h.getReceipt).Methods("GET")

	r.HandleFunc("/api/analytics/top-dishes", h.getTopDishes).Methods("GET")

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(h.requirePIN)
	admin.HandleFunc("/items", h.createMenuItem).Methods("POST")
	admin.HandleFunc("/items/{id}", h.updateMenuItem).Methods("PUT")
	admin.HandleFunc("/items/name/{dishName}", h.deleteMenuItem).Methods("DELETE")

	admin.HandleFunc("/discounts", h.createDiscount).Methods("POST")
	admin.HandleFunc("/discounts/{id}", h.deleteDiscount).Methods("DELETE")
	admin.HandleFunc("/addon-categories", h.createAddonCategory).Methods("POST")
	admin.HandleFunc("/addon-categories/{id}", h.deleteAddonCategory).Methods("DELETE")
	admin.HandleFunc("/offers", h.createOffer).Methods("POST")
	admin.HandleFunc("/offers/{id}", h.deleteOffer).Methods("DELETE")
	admin.HandleFunc("/events", h.createEvent).Methods("POST")
	admin.HandleFunc("/events/{id}", h.deleteEvent).Methods("DELETE")
	admin.HandleFunc("/reviews", h.createReview).Methods("POST")
	admin.HandleFunc("/reviews/{id}", h.deleteReview).Methods("DELETE")
	admin.HandleFunc("/awards", h.createAward).Methods("POST")
	admin.HandleFunc("/awards/{id}", h.deleteAward).Methods("DELETE")
	admin.HandleFunc("/chefs", h.createChef).Methods("POST")
	admin.HandleFunc("/chefs/{id}", h.deleteChef).Methods("DELETE")
	admin.HandleFunc("/branches", h.createBranch).Methods("POST")
	admin.HandleFunc("/branches/{id}", h.deleteBranch).Methods("DELETE")
	admin.HandleFunc("/faqs", h.createFAQ).Methods("POST")
	admin.HandleFunc("/faqs/{id}", h.deleteFAQ).Methods("DELETE")

	admin.HandleFunc("/settings/category-order", h.setCategoryOrder).Methods("PUT")
	admin.HandleFunc("/settings/ai", h.setAIEnabled).Methods("PUT")

	admin.HandleFunc("/export", h.exportBackup).Methods("GET")
	admin.HandleFunc("/import", h.importBackup).Methods("POST")
	admin.HandleFunc("/reset", h.resetCatalog).Methods("POST")
}

// requirePIN gates the admin subtree behind the shared admin PIN sent
// in the X-Admin-Pin header.
func (h *Handler) requirePIN(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Admin-Pin") != h.AdminPIN {
			http.Error(w, "Invalid admin PIN", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "af-restro",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// menuEntry is a menu item decorated with the price the customer pays
// right now for the default serving size, discounts applied.
type menuEntry struct {
	domain.MenuItem
	AdjustedPrice float64 `json:"adjustedPrice"`
	OriginalPrice float64 `json:"originalPrice"`
}

func (h *Handler) menuEntry(item domain.MenuItem, now time.Time) menuEntry {
	size := pricing.EffectiveSize(item, domain.SizeLarge)
	lp := pricing.PriceLine(item, size, nil, h.Catalog.Discounts(), now)
	return menuEntry{MenuItem: item, AdjustedPrice: lp.Adjusted, OriginalPrice: lp.Original}
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	items := h.Catalog.Items()
	entries := make([]menuEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, h.menuEntry(item, now))
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.Catalog.FindItem(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, h.menuEntry(item, time.Now()))
}

func (h *Handler) getAppData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.AppData())
}

func (h *Handler) getAddonCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.AddonCategories())
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":  h.Cart.Lines(),
		"totals": h.Cart.Totals(),
	})
}

type addCartItemRequest struct {
	ItemID string                 `json:"item_id"`
	Size   string                 `json:"size"`
	Addons []domain.SelectedAddon `json:"addons"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item, ok := h.Catalog.FindItem(req.ItemID)
	if !ok {
		http.Error(w, "Menu item not found", http.StatusNotFound)
		return
	}

	now := time.Now()
	size := pricing.EffectiveSize(item, req.Size)
	lp := pricing.PriceLine(item, size, req.Addons, h.Catalog.Discounts(), now)
	line := h.Cart.Add(item, size, lp.Adjusted, lp.Original, req.Addons)
	writeJSON(w, http.StatusCreated, line)
}

func (h *Handler) updateCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Cart.UpdateQuantity(mux.Vars(r)["cartId"], req.Delta)
	h.getCart(w, r)
}

func (h *Handler) updateCartSize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Size string `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Cart.UpdateSize(mux.Vars(r)["cartId"], req.Size)
	h.getCart(w, r)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.Remove(mux.Vars(r)["cartId"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func orderErrorStatus(err error) int {
	if errors.Is(err, service.ErrNoTable) || errors.Is(err, service.ErrEmptyCart) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Table string `json:"table"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.Orders.Checkout(r.Context(), req.Table, time.Now())
	if err != nil {
		http.Error(w, err.Error(), orderErrorStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) confirmCheckout(w http.ResponseWriter, r *http.Request) {
	h.Orders.ConfirmCheckout()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkoutQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.CheckoutQR(r.URL.Query().Get("table"), time.Now())
	if err != nil {
		http.Error(w, err.Error(), orderErrorStatus(err))
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.Orders.Receipt(r.URL.Query().Get("table"), time.Now())
	if err != nil {
		http.Error(w, err.Error(), orderErrorStatus(err))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(receipt))
}

func (h *Handler) getTopDishes(w http.ResponseWriter, r *http.Request) {
	if h.Analytics == nil {
		http.Error(w, "Analytics unavailable", http.StatusServiceUnavailable)
		return
	}
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	top, err := h.Analytics.TopDishes(limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, top)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.Catalog.AddItem(item)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = mux.Vars(r)["id"]
	if err := h.Catalog.UpdateItem(item); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			http.Error(w, "Menu item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteItemByName(mux.Vars(r)["dishName"]); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			http.Error(w, "Menu item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// createEntry and deleteEntry fold the identical add/delete plumbing
// for the settings collections into two helpers.
func createEntry(w http.ResponseWriter, r *http.Request, target interface{}, save func() error) {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := save(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, target)
}

func deleteEntry(w http.ResponseWriter, err error) {
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createDiscount(w http.ResponseWriter, r *http.Request) {
	var d domain.Discount
	createEntry(w, r, &d, func() error { return h.Catalog.AddDiscount(d) })
}

func (h *Handler) deleteDiscount(w http.ResponseWriter, r *http.Request) {
	deleteEntry(w, h.Catalog.DeleteDiscount(mux.Vars(r)["id"]))
}

func (h *Handler) createAddonCategory(w http.ResponseWriter, r *http.Request) {
	var c domain.AddonCategory
	createEntry(w, r, &c, func() error { return h.Catalog.AddAddonCategory(c) })
}

func (h *Handler) deleteAddonCategory(w http.ResponseWriter, r *http.Request) {
	deleteEntry(w, h.Catalog.DeleteAddonCategory(mux.Vars(r)["id"]))
}

func (h *Handler) createOffer(w http.ResponseWriter, r *http.Request) {
	var o domain.SpecialOffer
	createEntry(w, r, &o, func() error { return h.Catalog.AddOffer(o) })
}

func (h *Handler) deleteOffer(w http.ResponseWriter, r *http.Request) {
	deleteEntry(w, h.Catalog.DeleteOffer(mux.Vars(r)["id"]))
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var e domain.Event
	createEntry(w, r, &e, func() error { return h.Catalog.AddEvent(e) })
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	deleteEntry(w, h.Catalog.DeleteEvent(mux.Vars(r)["id"]))
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var rev domain.Review
	createEntry(w, r, &rev, func() error { return h.Catalog.AddReview(rev) })
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	deleteEntry(w, h.Catalog.DeleteReview(mux.Vars(r)["id"]))
}

func (h *Handler) createAward(w http.ResponseWriter, r *http.Request) {
	var a domain.Award
	createEntry(w, r, &a, func() error { return h.Catalog.AddAward(a) })
}

func (h *Handler) deleteAward(w http.ResponseWriter, r *http.Request) {
	deleteEntry(w, h.Catalog.DeleteAward(mux.Vars(r)["id"]))
}

func (h *Handler) createChef(w http.ResponseWriter, r *http.Request) {
	var c domain.Chef
	createEntry(w, r, &c, func() error { return h.Catalog.AddChef(c) })
}

func (h *Handler) deleteChef(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	deleteEntry(w, h.Catalog.DeleteChef(id))
}

func (h *Handler) createBranch(w http.ResponseWriter, r *http.Request) {
	var b domain.Branch
	createEntry(w, r, &b, func() error { return h.Catalog.AddBranch(b) })
}

func (h *Handler) deleteBranch(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	deleteEntry(w, h.Catalog.DeleteBranch(id))
}

func (h *Handler) createFAQ(w http.ResponseWriter, r *http.Request) {
	var f domain.FAQ
	createEntry(w, r, &f, func() error { return h.Catalog.AddFAQ(f) })
}

func (h *Handler) deleteFAQ(w http.ResponseWriter, r *http.Request) {
	deleteEntry(w, h.Catalog.DeleteFAQ(mux.Vars(r)["id"]))
}

func (h *Handler) setCategoryOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CategoryOrder []string `json:"categoryOrder"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.SetCategoryOrder(req.CategoryOrder); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setAIEnabled(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Catalog.SetAIEnabled(req.Enabled); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) exportBackup(w http.ResponseWriter, r *http.Request) {
	filename, data, err := h.Backup.Export()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.Write(data)
}

func (h *Handler) importBackup(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read backup payload", http.StatusBadRequest)
		return
	}
	if err := h.Backup.Import(raw); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Backup imported successfully"})
}

func (h *Handler) resetCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Reset(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.Cart.Clear()
	writeJSON(w, http.StatusOK, map[string]string{"message": "All data restored to defaults"})
}
