package caret

import (
	"context"
	"fmt"
	"net/url"

	"github.com/caret-so/client-go/internal/api"
	"github.com/caret-so/client-go/internal/apierrors"
)

// TagsService manages workspace tags.
type TagsService struct {
	api *api.Client
}

// List returns all tags in the workspace.
func (s *TagsService) List(ctx context.Context) (*TagList, error) {
	var result TagList
	if err := s.api.Get(ctx, "/tags", nil, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceTag)
	}
	return &result, nil
}

// CreateTagRequest is the payload for creating a tag.
type CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Create creates a new tag.
func (s *TagsService) Create(ctx context.Context, req *CreateTagRequest) (*Tag, error) {
	var result Tag
	if err := s.api.Post(ctx, "/tags", &api.RequestOptions{Body: req}, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceTag)
	}
	return &result, nil
}

// UpdateTagRequest is the payload for updating a tag. Nil fields are left
// unchanged.
type UpdateTagRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// Update applies a partial update to a tag.
func (s *TagsService) Update(ctx context.Context, tagID string, req *UpdateTagRequest) (*Tag, error) {
	var result Tag
	path := fmt.Sprintf("/tags/%s", url.PathEscape(tagID))
	if err := s.api.Patch(ctx, path, &api.RequestOptions{Body: req}, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceTag)
	}
	return &result, nil
}

// Delete deletes a tag. Notes carrying the tag keep their other tags.
func (s *TagsService) Delete(ctx context.Context, tagID string) error {
	path := fmt.Sprintf("/tags/%s", url.PathEscape(tagID))
	return apierrors.WithResource(s.api.Delete(ctx, path, nil, nil), apierrors.ResourceTag)
}
