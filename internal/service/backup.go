package service

import (
	"encoding/json"
	"fmt"
	"time"

	"af-restro/internal/domain"
	"af-restro/internal/storage"
)

// backupEnvelope is the on-disk export format: the full menu plus the
// settings document, with inline media reduced to bare filenames so the
// export stays portable.
type backupEnvelope struct {
	Items   []domain.MenuItem `json:"items"`
	AppData domain.AppData    `json:"appData"`
}

// BackupService exports and imports the whole catalog as one JSON
// document. Import is all-or-nothing: a payload that matches neither
// accepted shape is rejected without touching stored data.
type BackupService struct {
	catalog CatalogServiceInterface
}

func NewBackupService(catalog CatalogServiceInterface) *BackupService {
	return &BackupService{catalog: catalog}
}

// Export returns the suggested filename and the serialized backup
// envelope covering the menu and all settings. The catalog itself is
// never touched: the media rewrites below happen on copies.
func (s *BackupService) Export() (string, []byte, error) {
	items := s.catalog.Items()
	for i := range items {
		items[i].PhotoLink = storage.MediaFileName(items[i].PhotoLink)
		items[i].VideoLink = storage.MediaFileName(items[i].VideoLink)
	}

	app := s.catalog.AppData()
	app.Chefs = append([]domain.Chef(nil), app.Chefs...)
	app.Events = append([]domain.Event(nil), app.Events...)
	app.Offers = append([]domain.SpecialOffer(nil), app.Offers...)
	app.Branches = append([]domain.Branch(nil), app.Branches...)
	for i := range app.Chefs {
		app.Chefs[i].Image = storage.MediaFileName(app.Chefs[i].Image)
	}
	for i := range app.Events {
		app.Events[i].Image = storage.MediaFileName(app.Events[i].Image)
	}
	for i := range app.Offers {
		app.Offers[i].Image = storage.MediaFileName(app.Offers[i].Image)
	}
	for i := range app.Branches {
		app.Branches[i].MapImage = storage.MediaFileName(app.Branches[i].MapImage)
	}

	data, err := json.MarshalIndent(backupEnvelope{Items: items, AppData: app}, "", "  ")
	if err != nil {
		return "", nil, fmt.Errorf("failed to serialize backup: %w", err)
	}

	filename := fmt.Sprintf("AF_Restro_Backup_%s.json", time.Now().Format("2006-01-02"))
	return filename, data, nil
}

// Import restores a backup. Two payload shapes are accepted: a bare
// menu-item array (legacy exports), or the full envelope with items and
// appData. Settings fields absent from the envelope keep their current
// values.
func (s *BackupService) Import(raw []byte) error {
	// A literal "null" unmarshals into a nil slice without error; it is
	// not a menu and must not wipe one.
	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err == nil && items != nil {
		return s.catalog.ReplaceAll(items, nil)
	}

	var envelope struct {
		Items   []domain.MenuItem    `json:"items"`
		AppData *domain.AppDataPatch `json:"appData"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Items == nil {
		return fmt.Errorf("invalid backup file: expected a menu array or an items/appData document")
	}
	return s.catalog.ReplaceAll(envelope.Items, envelope.AppData)
}

var _ BackupServiceInterface = (*BackupService)(nil)
