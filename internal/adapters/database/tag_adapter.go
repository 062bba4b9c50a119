package database

import (
	"context"

	"github.com/campusinsider/campus-insider/internal/domain/repositories"
	"github.com/campusinsider/campus-insider/internal/infrastructure/clients/postgres"
	apperrors "github.com/campusinsider/campus-insider/pkg/errors"
)

// TagAdapter serves the tag vocabularies from Postgres.
type TagAdapter struct {
	client *postgres.Client
}

// NewTagAdapter creates a new tag adapter.
func NewTagAdapter(client *postgres.Client) repositories.TagRepository {
	return &TagAdapter{client: client}
}

// List returns the vocabulary for a tag kind in its curated order.
func (a *TagAdapter) List(ctx context.Context, kind repositories.TagKind) ([]string, error) {
	query := `SELECT name FROM tags WHERE kind = $1 ORDER BY position`

	rows, err := a.client.DB().QueryContext(ctx, query, kind)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list tags", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, apperrors.NewInternalError("failed to scan tag row", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to read tag rows", err)
	}

	return tags, nil
}
