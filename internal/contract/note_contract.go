package contract

import "encoding/json"

// PaneItemPayload is the wire shape of a single pane entry. Notes is omitted
// from responses when unset.
type PaneItemPayload struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	Notes   *string `json:"notes,omitempty"`
}

type NoteResponse struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
	People    []PaneItemPayload `json:"people"`
	Places    []PaneItemPayload `json:"places"`
	Events    []PaneItemPayload `json:"events"`
	Verses    []PaneItemPayload `json:"verses"`
}

// NoteSummaryResponse is the list-view projection of a note.
type NoteSummaryResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type CreateNoteRequest struct {
	ID    string `json:"id"`
	Title string `json:"title" validate:"required"`
}

// UpdateNoteRequest keeps the four pane arrays as raw JSON: malformed
// elements are filtered out during sanitization instead of failing the bind,
// so a bad item never rejects the whole request.
type UpdateNoteRequest struct {
	Title  string          `json:"title" validate:"required"`
	People json.RawMessage `json:"people"`
	Places json.RawMessage `json:"places"`
	Events json.RawMessage `json:"events"`
	Verses json.RawMessage `json:"verses"`
}
