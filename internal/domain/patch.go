package domain

// AppDataPatch is the partial settings document accepted on import.
// Nil fields mean "absent in the file, keep current value"; this is the
// schema-validated replacement for the loose per-key merging the backup
// format historically allowed.
type AppDataPatch struct {
	Offers          []SpecialOffer  `json:"offers"`
	Discounts       []Discount      `json:"discounts"`
	Events          []Event         `json:"events"`
	Reviews         []Review        `json:"reviews"`
	Awards          []Award         `json:"awards"`
	Chefs           []Chef          `json:"chefs"`
	Branches        []Branch        `json:"branches"`
	CategoryOrder   []string        `json:"categoryOrder"`
	IsAiEnabled     *bool           `json:"isAiEnabled"`
	AddonCategories []AddonCategory `json:"addonCategories"`
	FAQs            []FAQ           `json:"faqs"`
}

// ApplyTo overwrites only the fields present in the patch.
func (p *AppDataPatch) ApplyTo(app *AppData) {
	if p == nil {
		return
	}
	if p.Offers != nil {
		app.Offers = p.Offers
	}
	if p.Discounts != nil {
		app.Discounts = p.Discounts
	}
	if p.Events != nil {
		app.Events = p.Events
	}
	if p.Reviews != nil {
		app.Reviews = p.Reviews
	}
	if p.Awards != nil {
		app.Awards = p.Awards
	}
	if p.Chefs != nil {
		app.Chefs = p.Chefs
	}
	if p.Branches != nil {
		app.Branches = p.Branches
	}
	if p.CategoryOrder != nil {
		app.CategoryOrder = p.CategoryOrder
	}
	if p.IsAiEnabled != nil {
		app.IsAiEnabled = *p.IsAiEnabled
	}
	if p.AddonCategories != nil {
		app.AddonCategories = p.AddonCategories
	}
	if p.FAQs != nil {
		app.FAQs = p.FAQs
	}
}
