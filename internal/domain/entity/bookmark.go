// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Bookmark is a repository a user has pinned: the repository name plus the
// owner's avatar for display. Search results share the same shape, so a
// bookmark is simply a search hit the user chose to keep.
//
// Within one user's collection the Name is the identity: inserts compare it
// case-sensitively, removals case-insensitively.
type Bookmark struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// AuthenticatedIdentity is the identity extracted from a validated bearer
// token, built once per request by the auth middleware and passed explicitly
// to anything that needs to know who is calling.
type AuthenticatedIdentity struct {
	Subject string // The token subject, i.e. the username.
}
