package caret

import (
	"context"
	"fmt"
	"net/url"

	"github.com/caret-so/client-go/internal/api"
	"github.com/caret-so/client-go/internal/apierrors"
)

// WorkspaceService manages workspace settings, members, invites and groups.
type WorkspaceService struct {
	api *api.Client
}

// Get returns the workspace the API key belongs to.
func (s *WorkspaceService) Get(ctx context.Context) (*Workspace, error) {
	var result Workspace
	if err := s.api.Get(ctx, "/workspace", nil, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWorkspace)
	}
	return &result, nil
}

// UpdateWorkspaceRequest is the payload for updating workspace settings.
type UpdateWorkspaceRequest struct {
	Name *string `json:"name,omitempty"`
}

// Update applies a partial update to the workspace.
func (s *WorkspaceService) Update(ctx context.Context, req *UpdateWorkspaceRequest) (*Workspace, error) {
	var result Workspace
	if err := s.api.Patch(ctx, "/workspace", &api.RequestOptions{Body: req}, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWorkspace)
	}
	return &result, nil
}

// ListMembers returns all members of the workspace.
func (s *WorkspaceService) ListMembers(ctx context.Context) (*MemberList, error) {
	var result MemberList
	if err := s.api.Get(ctx, "/workspace/members", nil, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWorkspace)
	}
	return &result, nil
}

// RemoveMember removes a member from the workspace.
func (s *WorkspaceService) RemoveMember(ctx context.Context, memberID string) error {
	path := fmt.Sprintf("/workspace/members/%s", url.PathEscape(memberID))
	return apierrors.WithResource(s.api.Delete(ctx, path, nil, nil), apierrors.ResourceWorkspace)
}

// ListInvites returns all pending invitations.
func (s *WorkspaceService) ListInvites(ctx context.Context) (*InviteList, error) {
	var result InviteList
	if err := s.api.Get(ctx, "/workspace/invites", nil, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWorkspace)
	}
	return &result, nil
}

// CreateInviteRequest is the payload for inviting a user to the workspace.
type CreateInviteRequest struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// CreateInvite invites a user to the workspace.
func (s *WorkspaceService) CreateInvite(ctx context.Context, req *CreateInviteRequest) (*Invite, error) {
	var result Invite
	if err := s.api.Post(ctx, "/workspace/invites", &api.RequestOptions{Body: req}, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWorkspace)
	}
	return &result, nil
}

// RevokeInvite revokes a pending invitation.
func (s *WorkspaceService) RevokeInvite(ctx context.Context, inviteID string) error {
	path := fmt.Sprintf("/workspace/invites/%s", url.PathEscape(inviteID))
	return apierrors.WithResource(s.api.Delete(ctx, path, nil, nil), apierrors.ResourceWorkspace)
}

// ListGroups returns all member groups in the workspace.
func (s *WorkspaceService) ListGroups(ctx context.Context) (*GroupList, error) {
	var result GroupList
	if err := s.api.Get(ctx, "/workspace/groups", nil, &result); err != nil {
		return nil, apierrors.WithResource(err, apierrors.ResourceWorkspace)
	}
	return &result, nil
}
