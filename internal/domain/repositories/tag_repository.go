package repositories

import "context"

// TagKind distinguishes the two tag vocabularies.
type TagKind string

const (
	TagKindEquipment     TagKind = "equipment"
	TagKindAccessibility TagKind = "accessibility"
)

// TagRepository serves the tag vocabularies used by the tag selector and
// the faceted location search.
type TagRepository interface {
	List(ctx context.Context, kind TagKind) ([]string, error)
}
