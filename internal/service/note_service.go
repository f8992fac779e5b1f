package service

import (
	"encoding/json"

	"scripturenotes/internal/contract"
	"scripturenotes/internal/domain/entity"
	"scripturenotes/internal/utils"
	"scripturenotes/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

type NoteRepository interface {
	FindAllSummaries() ([]*entity.Note, error)
	FindByID(id string) (*entity.Note, []*entity.PaneItem, error)
	Create(note *entity.Note) error
	Replace(id, title, updatedAt string, items []*entity.PaneItem) (bool, error)
	Delete(id string) (bool, error)
}

type DefaultNoteService struct {
	NoteRepo NoteRepository
	Validate *validator.Validate
}

func NewNoteService(noteRepo NoteRepository, validate *validator.Validate) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo: noteRepo,
		Validate: validate,
	}
}

func (n *DefaultNoteService) GetAllNotes() ([]*contract.NoteSummaryResponse, apierror.ErrorResponse) {
	notes, err := n.NoteRepo.FindAllSummaries()
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		return nil, apierror.FetchNotesError
	}

	resp := make([]*contract.NoteSummaryResponse, len(notes))
	for i, note := range notes {
		resp[i] = toSummaryResponse(note)
	}
	return resp, nil
}

func (n *DefaultNoteService) GetNoteByID(id string) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, items, err := n.NoteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch note: %v", err)
		return nil, apierror.FetchNoteError
	}

	if note == nil {
		return nil, apierror.NoteNotFoundError
	}
	return toNoteResponse(note, items), nil
}

// CreateNote stores a new note with empty pane lists. When the request omits
// an id the server generates one.
func (n *DefaultNoteService) CreateNote(req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.TitleRequiredError
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := utils.NowISO()
	note := &entity.Note{
		ID:        id,
		Title:     req.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := n.NoteRepo.Create(note); err != nil {
		log.Errorf("failed to create note: %v", err)
		return nil, apierror.CreateNoteError
	}
	return toNoteResponse(note, nil), nil
}

// UpdateNote replaces the note's title and all four pane lists with the
// submitted set, then re-reads the stored note for the response.
func (n *DefaultNoteService) UpdateNote(id string, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, apierror.TitleRequiredError
	}

	items := collectPaneItems(id, req)
	found, err := n.NoteRepo.Replace(id, req.Title, utils.NowISO(), items)
	if err != nil {
		log.Errorf("failed to update note: %v", err)
		return nil, apierror.UpdateNoteError
	}
	if !found {
		return nil, apierror.NoteNotFoundError
	}

	note, stored, err := n.NoteRepo.FindByID(id)
	if err != nil || note == nil {
		log.Errorf("failed to re-read note after update: %v", err)
		return nil, apierror.UpdateNoteError
	}
	return toNoteResponse(note, stored), nil
}

func (n *DefaultNoteService) DeleteNote(id string) apierror.ErrorResponse {
	found, err := n.NoteRepo.Delete(id)
	if err != nil {
		log.Errorf("failed to delete note: %v", err)
		return apierror.DeleteNoteError
	}
	if !found {
		return apierror.NoteNotFoundError
	}
	return nil
}

// collectPaneItems flattens the request's pane arrays into rows, category
// then index order, recording each item's index as its sort order.
func collectPaneItems(noteID string, req *contract.UpdateNoteRequest) []*entity.PaneItem {
	panes := []struct {
		paneType entity.PaneType
		raw      json.RawMessage
	}{
		{entity.PanePeople, req.People},
		{entity.PanePlaces, req.Places},
		{entity.PaneEvents, req.Events},
		{entity.PaneVerses, req.Verses},
	}

	var items []*entity.PaneItem
	for _, pane := range panes {
		for i, payload := range sanitizePaneItems(pane.raw) {
			items = append(items, &entity.PaneItem{
				ID:        payload.ID,
				NoteID:    noteID,
				PaneType:  pane.paneType,
				Content:   payload.Content,
				Notes:     payload.Notes,
				SortOrder: i,
			})
		}
	}
	return items
}

// sanitizePaneItems applies the lenient pane policy: the value must be a JSON
// array; elements that are not objects, or lack string id/content, are
// dropped rather than rejecting the request; notes is kept only when it is a
// string. Malformed items never surface a 400.
func sanitizePaneItems(raw json.RawMessage) []contract.PaneItemPayload {
	items := []contract.PaneItemPayload{}
	if len(raw) == 0 {
		return items
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return items
	}

	for _, element := range elements {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(element, &fields); err != nil {
			continue
		}

		var id, content, notes *string
		if err := json.Unmarshal(fields["id"], &id); err != nil || id == nil {
			continue
		}
		if err := json.Unmarshal(fields["content"], &content); err != nil || content == nil {
			continue
		}

		item := contract.PaneItemPayload{ID: *id, Content: *content}
		if rawNotes, ok := fields["notes"]; ok {
			if err := json.Unmarshal(rawNotes, &notes); err == nil && notes != nil {
				item.Notes = notes
			}
		}
		items = append(items, item)
	}
	return items
}

func toSummaryResponse(note *entity.Note) *contract.NoteSummaryResponse {
	return &contract.NoteSummaryResponse{
		ID:        note.ID,
		Title:     note.Title,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func toNoteResponse(note *entity.Note, items []*entity.PaneItem) *contract.NoteResponse {
	resp := &contract.NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
		People:    []contract.PaneItemPayload{},
		Places:    []contract.PaneItemPayload{},
		Events:    []contract.PaneItemPayload{},
		Verses:    []contract.PaneItemPayload{},
	}

	for _, item := range items {
		payload := contract.PaneItemPayload{
			ID:      item.ID,
			Content: item.Content,
			Notes:   item.Notes,
		}
		switch item.PaneType {
		case entity.PanePeople:
			resp.People = append(resp.People, payload)
		case entity.PanePlaces:
			resp.Places = append(resp.Places, payload)
		case entity.PaneEvents:
			resp.Events = append(resp.Events, payload)
		case entity.PaneVerses:
			resp.Verses = append(resp.Verses, payload)
		}
	}
	return resp
}
