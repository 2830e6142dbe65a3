package storage

import (
	"strings"

	"go-hiring-backend/internal/domain"
)

// ReferenceKind tags the three reference shapes the data set has
// accumulated over time.
type ReferenceKind int

const (
	// ReferenceAddressed is a 24-hex content-addressed blob ref.
	ReferenceAddressed ReferenceKind = iota
	// ReferenceStaged is a folder-qualified staging path
	// ("default/..." or "user-dashboard/...").
	ReferenceStaged
	// ReferenceLegacy is a bare filename with no folder prefix; resolution
	// guesses the default staging folder.
	ReferenceLegacy
)

// Reference is the tagged union over every reference string other
// entities may hold. Exactly one of Ref/Path is meaningful per kind.
type Reference struct {
	Kind ReferenceKind
	Ref  domain.Ref // Addressed only
	Path string     // Staged: folder-qualified path; Legacy: bare filename
}

// ParseReference classifies a reference string. Well-formed 24-hex wins;
// then a recognized staged-folder segment anywhere in the path; anything
// else is treated as a legacy bare filename (trailing path component).
func ParseReference(s string) Reference {
	s = strings.TrimSpace(s)

	if ref, err := domain.ParseRef(s); err == nil {
		return Reference{Kind: ReferenceAddressed, Ref: ref}
	}

	segments := strings.Split(s, "/")
	for i, segment := range segments {
		if domain.KnownStagedFolder(segment) && i < len(segments)-1 {
			return Reference{Kind: ReferenceStaged, Path: strings.Join(segments[i:], "/")}
		}
	}

	return Reference{Kind: ReferenceLegacy, Path: segments[len(segments)-1]}
}
