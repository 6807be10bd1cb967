package caret

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
)

func TestTags_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/tags" {
			t.Errorf("request = %s %s, want GET /tags", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"tags": []map[string]any{
				{"id": "tag_1", "name": "1:1", "color": "#ff8800"},
			},
			"total": 1,
		})
	})

	list, err := client.Tags.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list.Tags) != 1 || list.Tags[0].Name != "1:1" {
		t.Errorf("Tags = %+v", list.Tags)
	}
}

func TestTags_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tags" {
			t.Errorf("request = %s %s, want POST /tags", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"name":"eng","color":"#00cc88"}` {
			t.Errorf("body = %s", body)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": "tag_9", "name": "eng", "color": "#00cc88"})
	})

	tag, err := client.Tags.Create(context.Background(), &CreateTagRequest{Name: "eng", Color: "#00cc88"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if tag.ID != "tag_9" {
		t.Errorf("ID = %q, want tag_9", tag.ID)
	}
}

func TestTags_Create_Conflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"tag already exists"}`))
	})

	_, err := client.Tags.Create(context.Background(), &CreateTagRequest{Name: "eng"})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("errors.Is(err, ErrConflict) = false, err = %v", err)
	}
}

func TestTags_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/tags/tag_1" {
			t.Errorf("request = %s %s, want PATCH /tags/tag_1", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"id": "tag_1", "name": "renamed"})
	})

	name := "renamed"
	tag, err := client.Tags.Update(context.Background(), "tag_1", &UpdateTagRequest{Name: &name})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if tag.Name != "renamed" {
		t.Errorf("Name = %q, want renamed", tag.Name)
	}
}

func TestTags_Delete_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"tag not found"}`))
	})

	err := client.Tags.Delete(context.Background(), "tag_missing")
	if !errors.Is(err, ErrTagNotFound) {
		t.Errorf("errors.Is(err, ErrTagNotFound) = false, err = %v", err)
	}
}
