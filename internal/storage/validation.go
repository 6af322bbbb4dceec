package storage

import (
	"context"
	"fmt"
	"regexp"

	"github.com/resenha-br/resenha/internal/model"
)

// tableNamePattern restricts sink table names to lowercase identifiers so
// they can be interpolated into DDL safely.
var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateTableName(name string) error {
	if !tableNamePattern.MatchString(name) {
		return fmt.Errorf("invalid table name: %q", name)
	}
	return nil
}

func validateReviews(reviews []model.Review) error {
	for i, r := range reviews {
		if r.ID == "" {
			return fmt.Errorf("review %d has empty id", i)
		}
	}
	return nil
}
