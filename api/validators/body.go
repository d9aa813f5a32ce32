package validators

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/stockroomhq/inventory-backend/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeJSONBody decodes the request body into dest and runs struct
// validation. A body that is not a JSON object (bare string, array,
// malformed JSON) fails with a bad-shape validation error; a missing
// required field fails naming that field. Fields are validated in
// struct declaration order, so the first missing key wins.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "body of request contained bad or no data").
			WithDetails(map[string]any{"reason": "bad_shape"})
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
	}

	first := errs[0]
	if first.Tag() == "required" {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing "+first.Field()).
			WithDetails(map[string]any{"reason": "missing_field", "field": first.Field()})
	}
	return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid %s", first.Field())).
		WithDetails(map[string]any{"reason": "invalid_field", "field": first.Field()})
}
