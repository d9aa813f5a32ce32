package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/stockroomhq/inventory-backend/pkg/errors"
)

// ParseOptionalQueryInt returns a pointer to the integer value of the
// named query parameter, or nil when the parameter is absent. An unset
// parameter is distinct from a literal 0, which still filters.
func ParseOptionalQueryInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").
			WithDetails(map[string]any{"reason": "invalid_field", "field": key})
	}
	return &value, nil
}
