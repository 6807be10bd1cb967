package caret

import "time"

// NoteStatus indicates where a note is in the transcription pipeline.
type NoteStatus string

const (
	// NoteStatusProcessing indicates the recording is still being transcribed.
	NoteStatusProcessing NoteStatus = "processing"
	// NoteStatusReady indicates the transcript and summary are available.
	NoteStatusReady NoteStatus = "ready"
	// NoteStatusFailed indicates transcription failed.
	NoteStatusFailed NoteStatus = "failed"
)

// Note is a meeting note with its summary and associated metadata.
type Note struct {
	ID          string     `json:"id"`
	WorkspaceID string     `json:"workspaceId"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary,omitempty"`
	Content     string     `json:"content,omitempty"`
	Status      NoteStatus `json:"status"`
	Meeting     *Meeting   `json:"meeting,omitempty"`
	Tags        []Tag      `json:"tags,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Meeting describes the recorded meeting a note was produced from.
type Meeting struct {
	ID           string     `json:"id"`
	Platform     string     `json:"platform,omitempty"`
	StartedAt    time.Time  `json:"startedAt"`
	EndedAt      *time.Time `json:"endedAt,omitempty"`
	Participants []string   `json:"participants,omitempty"`
}

// Utterance is a single speaker turn in a meeting transcript.
type Utterance struct {
	Speaker string `json:"speaker"`
	StartMs int    `json:"startMs"`
	EndMs   int    `json:"endMs"`
	Text    string `json:"text"`
}

// Tag labels notes for filtering and reporting.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Workspace is the account-level container for notes, tags and members.
type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Plan      string    `json:"plan,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Member is a user belonging to a workspace.
type Member struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name,omitempty"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Invite is a pending invitation to join a workspace.
type Invite struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	InvitedBy string    `json:"invitedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Group is a named set of workspace members.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	MemberIDs []string  `json:"memberIds,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NoteList is a page of notes. Offset is the server-provided offset of the
// next page; it is passed through verbatim and is nil on the last page.
type NoteList struct {
	Notes      []*Note `json:"notes"`
	Total      int     `json:"total"`
	NextOffset *int    `json:"nextOffset,omitempty"`
}

// TagList is the response envelope for listing tags.
type TagList struct {
	Tags  []*Tag `json:"tags"`
	Total int    `json:"total"`
}

// MemberList is the response envelope for listing workspace members.
type MemberList struct {
	Members []*Member `json:"members"`
	Total   int       `json:"total"`
}

// InviteList is the response envelope for listing pending invites.
type InviteList struct {
	Invites []*Invite `json:"invites"`
	Total   int       `json:"total"`
}

// GroupList is the response envelope for listing member groups.
type GroupList struct {
	Groups []*Group `json:"groups"`
	Total  int      `json:"total"`
}
