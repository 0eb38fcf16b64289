package domain

import "time"

// Cart line sizes. Size names are fixed; "Large" renders as "Full" in the UI.
const (
	SizeSingle  = "Single"
	SizeRegular = "Regular"
	SizeLarge   = "Large"
)

// Discount kinds.
const (
	DiscountFlat      = "FLAT"
	DiscountHappyHour = "HAPPY_HOUR"
)

type MenuItem struct {
	ID                   string   `json:"id"`
	DishName             string   `json:"dish_name"`
	ArabicName           string   `json:"arabic_name,omitempty"`
	Description          string   `json:"description"`
	Price                float64  `json:"price"`
	Category             string   `json:"category"`
	PhotoLink            string   `json:"photo_link"`
	VideoLink            string   `json:"video_link"`
	IsVeg                bool     `json:"is_veg"`
	Bestseller           bool     `json:"bestseller"`
	ChefSpecial          bool     `json:"chef_special,omitempty"`
	TodaysSpecial        bool     `json:"todays_special,omitempty"`
	SpicyLevel           string   `json:"spicy_level"`
	Timing               string   `json:"timing,omitempty"`
	Ingredients          []string `json:"ingredients,omitempty"`
	CustomizationOptions []string `json:"customization_options,omitempty"`
	CookTime             int      `json:"cook_time,omitempty"`
	Calories             int      `json:"calories,omitempty"`
	PricingOption        string   `json:"pricing_option,omitempty"`
	TagName              string   `json:"tag_name,omitempty"`
	ServesHowMany        int      `json:"serves_how_many,omitempty"`
	AddonCategoryIDs     []string `json:"addon_category_ids,omitempty"`
}

// Discount applies a percentage off for a whole menu category.
// HAPPY_HOUR rules are only active inside the [StartTime, EndTime]
// time-of-day window ("HH:MM", defaults 00:00-23:59, inclusive bounds).
type Discount struct {
	ID         string  `json:"id"`
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Type       string  `json:"type"`
	StartTime  string  `json:"startTime,omitempty"`
	EndTime    string  `json:"endTime,omitempty"`
}

type AddonItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type AddonCategory struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Items []AddonItem `json:"items"`
}

// SelectedAddon is the per-line add-on selection for one addon category.
type SelectedAddon struct {
	CategoryID   string      `json:"categoryId"`
	CategoryName string      `json:"categoryName"`
	Items        []AddonItem `json:"items"`
}

// CartLine is a materialized purchase intent. The menu item is embedded
// by value: a snapshot taken at add-time, so later catalog edits do not
// rewrite lines already in the cart. AdjustedPrice and OriginalPrice are
// per-unit, computed once at add time and only recomputed on an explicit
// size change.
type CartLine struct {
	MenuItem

	CartID         string          `json:"cartId"`
	Quantity       int             `json:"quantity"`
	Size           string          `json:"size"`
	AdjustedPrice  float64         `json:"adjustedPrice"`
	OriginalPrice  float64         `json:"originalPrice,omitempty"`
	SelectedAddons []SelectedAddon `json:"selectedAddons,omitempty"`
}

// CartTotals is derived from the cart lines at read time, never stored.
type CartTotals struct {
	Subtotal      float64 `json:"subtotal"`
	OriginalTotal float64 `json:"original_total"`
	DiscountTotal float64 `json:"discount_total"`
	Tax           float64 `json:"tax"`
	GrandTotal    float64 `json:"grand_total"`
}

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Chef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
	Bio   string `json:"bio"`
}

type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type Review struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
	Avatar  string `json:"avatar"`
	Source  string `json:"source"`
	Photo   string `json:"photo,omitempty"`
}

type Branch struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	MapImage string `json:"map_image"`
}

type Award struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Year         string `json:"year"`
}

type SpecialOffer struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// AppData is the settings document persisted alongside the menu: every
// piece of admin-editable content that is not a menu item.
type AppData struct {
	Offers          []SpecialOffer  `json:"offers"`
	Discounts       []Discount      `json:"discounts"`
	Events          []Event         `json:"events"`
	Reviews         []Review        `json:"reviews"`
	Awards          []Award         `json:"awards"`
	Chefs           []Chef          `json:"chefs"`
	Branches        []Branch        `json:"branches"`
	CategoryOrder   []string        `json:"categoryOrder,omitempty"`
	IsAiEnabled     bool            `json:"isAiEnabled"`
	AddonCategories []AddonCategory `json:"addonCategories,omitempty"`
	FAQs            []FAQ           `json:"faqs,omitempty"`
}

// OrderEvent is emitted on checkout for downstream analytics.
type OrderEventItem struct {
	DishID   string `json:"dish_id"`
	DishName string `json:"dish_name"`
	Quantity int    `json:"quantity"`
}

type OrderEvent struct {
	Type       string           `json:"type"`
	Table      string           `json:"table"`
	Items      []OrderEventItem `json:"items"`
	Subtotal   float64          `json:"subtotal"`
	GrandTotal float64          `json:"grand_total"`
	Timestamp  time.Time        `json:"timestamp"`
}
