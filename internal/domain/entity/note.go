package entity

// PaneType tags a pane item with the category list it belongs to.
type PaneType string

const (
	PanePeople PaneType = "people"
	PanePlaces PaneType = "places"
	PaneEvents PaneType = "events"
	PaneVerses PaneType = "verses"
)

// Note timestamps are stored as UTC ISO-8601 strings, the same format the
// client sends and renders, so rows round-trip without conversion.
type Note struct {
	ID        string `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	CreatedAt string `gorm:"not null"`
	UpdatedAt string `gorm:"not null"`
}

// PaneItem belongs to exactly one note and one pane type. SortOrder records
// the item's index within its category at last save and defines read order.
// IDs come from the client and are treated as opaque display identifiers.
type PaneItem struct {
	ID        string   `gorm:"primaryKey"`
	NoteID    string   `gorm:"not null;index"`
	PaneType  PaneType `gorm:"not null"`
	Content   string   `gorm:"not null"`
	Notes     *string
	SortOrder int `gorm:"default:0"`
}
