package caret

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
)

func TestNotes_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/notes" {
			t.Errorf("request = %s %s, want GET /notes", r.Method, r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("limit") != "2" || q.Get("status") != "ready" {
			t.Errorf("query = %q, want limit=2 and status=ready", r.URL.RawQuery)
		}
		if q.Has("offset") {
			t.Error("offset sent despite being unset")
		}

		json.NewEncoder(w).Encode(map[string]any{
			"notes": []map[string]any{
				{"id": "note_1", "title": "Standup", "status": "ready"},
				{"id": "note_2", "title": "Planning", "status": "ready"},
			},
			"total":      5,
			"nextOffset": 2,
		})
	})

	list, err := client.Notes.List(context.Background(), &ListNotesOptions{
		Limit:  2,
		Status: NoteStatusReady,
	})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(list.Notes) != 2 {
		t.Fatalf("len(Notes) = %d, want 2", len(list.Notes))
	}
	if list.Notes[0].ID != "note_1" || list.Notes[0].Title != "Standup" {
		t.Errorf("Notes[0] = %+v", list.Notes[0])
	}
	if list.Total != 5 {
		t.Errorf("Total = %d, want 5", list.Total)
	}
	if list.NextOffset == nil || *list.NextOffset != 2 {
		t.Errorf("NextOffset = %v, want 2", list.NextOffset)
	}
}

func TestNotes_List_PassesOffsetThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("offset"); got != "2" {
			t.Errorf("offset = %q, want 2", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"notes": []any{}, "total": 5})
	})

	offset := 2
	list, err := client.Notes.List(context.Background(), &ListNotesOptions{Offset: &offset})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list.NextOffset != nil {
		t.Errorf("NextOffset = %v, want nil on the last page", list.NextOffset)
	}
}

func TestNotes_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/notes/note_1" {
			t.Errorf("request = %s %s, want GET /notes/note_1", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "note_1",
			"title": "Standup",
			"meeting": map[string]any{
				"id":       "mtg_1",
				"platform": "zoom",
			},
		})
	})

	note, err := client.Notes.Get(context.Background(), "note_1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if note.Title != "Standup" {
		t.Errorf("Title = %q, want Standup", note.Title)
	}
	if note.Meeting == nil || note.Meeting.Platform != "zoom" {
		t.Errorf("Meeting = %+v, want platform zoom", note.Meeting)
	}
}

func TestNotes_Get_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"note not found"}`))
	})

	_, err := client.Notes.Get(context.Background(), "note_missing")
	if !errors.Is(err, ErrNoteNotFound) {
		t.Errorf("errors.Is(err, ErrNoteNotFound) = false, err = %v", err)
	}
	if errors.Is(err, ErrTagNotFound) {
		t.Error("a note 404 matched ErrTagNotFound")
	}
}

func TestNotes_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/notes/note_1" {
			t.Errorf("request = %s %s, want PATCH /notes/note_1", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"title":"Renamed"}` {
			t.Errorf("body = %s, want only the changed field", body)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "note_1", "title": "Renamed"})
	})

	title := "Renamed"
	note, err := client.Notes.Update(context.Background(), "note_1", &UpdateNoteRequest{Title: &title})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if note.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", note.Title)
	}
}

func TestNotes_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/notes/note_1" {
			t.Errorf("request = %s %s, want DELETE /notes/note_1", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Notes.Delete(context.Background(), "note_1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}

func TestNotes_Transcript(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/notes/note_1/transcript" {
			t.Errorf("path = %s, want /notes/note_1/transcript", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"utterances": []map[string]any{
				{"speaker": "Ada", "startMs": 0, "endMs": 4200, "text": "Let's get started."},
				{"speaker": "Grace", "startMs": 4300, "endMs": 9100, "text": "First item is the release."},
			},
		})
	})

	transcript, err := client.Notes.Transcript(context.Background(), "note_1")
	if err != nil {
		t.Fatalf("Transcript() error = %v", err)
	}
	if len(transcript) != 2 {
		t.Fatalf("len(transcript) = %d, want 2", len(transcript))
	}
	if transcript[0].Speaker != "Ada" || transcript[1].EndMs != 9100 {
		t.Errorf("transcript = %+v", transcript)
	}
}

func TestNotes_AddTags(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/notes/note_1/tags" {
			t.Errorf("request = %s %s, want POST /notes/note_1/tags", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"tagIds":["tag_1","tag_2"]}` {
			t.Errorf("body = %s", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": "note_1",
			"tags": []map[string]any{
				{"id": "tag_1", "name": "1:1"},
				{"id": "tag_2", "name": "eng"},
			},
		})
	})

	note, err := client.Notes.AddTags(context.Background(), "note_1", []string{"tag_1", "tag_2"})
	if err != nil {
		t.Fatalf("AddTags() error = %v", err)
	}
	if len(note.Tags) != 2 {
		t.Errorf("len(Tags) = %d, want 2", len(note.Tags))
	}
}

func TestNotes_RemoveTag(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/notes/note_1/tags/tag_1" {
			t.Errorf("request = %s %s, want DELETE /notes/note_1/tags/tag_1", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Notes.RemoveTag(context.Background(), "note_1", "tag_1"); err != nil {
		t.Fatalf("RemoveTag() error = %v", err)
	}
}
