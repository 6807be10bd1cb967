package caret

import (
	"context"
	"fmt"
	"net/url"

	"github.com/caret-so/client-go/internal/api"
	"github.com/caret-so/client-go/internal/apierrors"
)

// NotesService manages meeting notes.
type NotesService struct {
	api *api.Client
}

// ListNotesOptions filters and paginates note listings. Zero-valued fields
// are omitted from the query string.
type ListNotesOptions struct {
	// Limit is the page size.
	Limit int
	// Offset is the server-provided offset from NoteList.NextOffset,
	// passed through verbatim.
	Offset *int
	// Query filters notes by full-text search.
	Query string
	// TagID restricts results to notes carrying the tag.
	TagID string
	// Status restricts results to notes in the given pipeline state.
	Status NoteStatus
}

func (o *ListNotesOptions) params() map[string]any {
	if o == nil {
		return nil
	}
	params := map[string]any{}
	if o.Limit > 0 {
		params["limit"] = o.Limit
	}
	if o.Offset != nil {
		params["offset"] = *o.Offset
	}
	if o.Query != "" {
		params["q"] = o.Query
	}
	if o.TagID != "" {
		params["tagId"] = o.TagID
	}
	if o.Status != "" {
		params["status"] = string(o.Status)
	}
	return params
}

// List returns a page of notes in the workspace.
func (s *NotesService) List(ctx context.Context, opts *ListNotesOptions) (*NoteList, error) {
	var result NoteList
	reqOpts := &api.RequestOptions{Params: opts.params()}
	if err := s.api.Get(ctx, "/notes", reqOpts, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceNote)
	}
	return &result, nil
}

// Get returns a single note by ID.
func (s *NotesService) Get(ctx context.Context, noteID string) (*Note, error) {
	var result Note
	path := fmt.Sprintf("/notes/%s", url.PathEscape(noteID))
	if err := s.api.Get(ctx, path, nil, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceNote)
	}
	return &result, nil
}

// CreateNoteRequest is the payload for creating a note.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// Create creates a note without an associated recording, e.g. for manual
// meeting minutes.
func (s *NotesService) Create(ctx context.Context, req *CreateNoteRequest) (*Note, error) {
	var result Note
	if err := s.api.Post(ctx, "/notes", &api.RequestOptions{Body: req}, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceNote)
	}
	return &result, nil
}

// UpdateNoteRequest is the payload for updating a note. Nil fields are
// left unchanged.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Summary *string `json:"summary,omitempty"`
}

// Update applies a partial update to a note.
func (s *NotesService) Update(ctx context.Context, noteID string, req *UpdateNoteRequest) (*Note, error) {
	var result Note
	path := fmt.Sprintf("/notes/%s", url.PathEscape(noteID))
	if err := s.api.Patch(ctx, path, &api.RequestOptions{Body: req}, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceNote)
	}
	return &result, nil
}

// Delete permanently deletes a note.
func (s *NotesService) Delete(ctx context.Context, noteID string) error {
	path := fmt.Sprintf("/notes/%s", url.PathEscape(noteID))
	return apierrors.WithResource(s.api.Delete(ctx, path, nil, nil), apierrors.ResourceNote)
}

// Transcript returns the full speaker-attributed transcript of a note.
func (s *NotesService) Transcript(ctx context.Context, noteID string) ([]Utterance, error) {
	var result struct {
		Utterances []Utterance `json:"utterances"`
	}
	path := fmt.Sprintf("/notes/%s/transcript", url.PathEscape(noteID))
	if err := s.api.Get(ctx, path, nil, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceNote)
	}
	return result.Utterances, nil
}

// AddTags attaches tags to a note and returns the updated note.
func (s *NotesService) AddTags(ctx context.Context, noteID string, tagIDs []string) (*Note, error) {
	var result Note
	path := fmt.Sprintf("/notes/%s/tags", url.PathEscape(noteID))
	body := map[string][]string{"tagIds": tagIDs}
	if err := s.api.Post(ctx, path, &api.RequestOptions{Body: body}, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceNote)
	}
	return &result, nil
}

// RemoveTag detaches a tag from a note.
func (s *NotesService) RemoveTag(ctx context.Context, noteID, tagID string) error {
	path := fmt.Sprintf("/notes/%s/tags/%s", url.PathEscape(noteID), url.PathEscape(tagID))
	return apierrors.WithResource(s.api.Delete(ctx, path, nil, nil), apierrors.ResourceNote)
}
