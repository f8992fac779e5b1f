package apierror

import "fmt"

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"error"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

var (
	MalformedJSONError = NewSimple(400, "Malformed JSON body")
	TitleRequiredError = NewSimple(400, "Title is required")

	NoteNotFoundError = NewSimple(404, "Note not found")

	FetchNotesError = NewSimple(500, "Failed to fetch notes")
	FetchNoteError  = NewSimple(500, "Failed to fetch note")
	CreateNoteError = NewSimple(500, "Failed to create note")
	UpdateNoteError = NewSimple(500, "Failed to update note")
	DeleteNoteError = NewSimple(500, "Failed to delete note")
)

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}
