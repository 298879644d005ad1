package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/project_finance_app/internal/apperrors"
	"github.com/google/uuid"
)

// requireID trims id, checks that it is a UUID and returns it in canonical form.
func requireID(field, id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", apperrors.NewValidationFailedError(fmt.Sprintf("%s is required", field))
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", apperrors.NewValidationFailedError(fmt.Sprintf("%s %q is not a valid id", field, id))
	}
	return parsed.String(), nil
}

// normalizeIDs validates every id and drops repeats, keeping first-seen order.
func normalizeIDs(field string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, apperrors.NewValidationFailedError(fmt.Sprintf("%s must contain at least one id", field))
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, raw := range ids {
		id, err := requireID(field, raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}
