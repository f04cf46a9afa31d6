package apis

import (
	"regexp"
	"sync"

	"github.com/collectorlists/collectorsrv/pkg/types"
	"github.com/go-playground/validator/v10"
)

// field_key must be a stable machine identifier: letter first, then
// letters/digits/underscores.
const fieldKeyRegex = `^[a-zA-Z][a-zA-Z0-9_]*$`

var (
	v     *validator.Validate
	vOnce sync.Once
)

// V returns the shared validator with the custom validations registered.
func V() *validator.Validate {
	vOnce.Do(func() {
		v = validator.New()
		_ = v.RegisterValidation("fieldKeyFormatValidator", fieldKeyFormatValidator)
		_ = v.RegisterValidation("dataTypeValidator", dataTypeValidator)
	})
	return v
}

// fieldKeyFormatValidator checks if the given field key matches the stable-identifier pattern.
func fieldKeyFormatValidator(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(fieldKeyRegex)
	return re.MatchString(fl.Field().String())
}

// dataTypeValidator checks if the given data type is one of the supported set.
func dataTypeValidator(fl validator.FieldLevel) bool {
	return types.IsValidDataType(fl.Field().String())
}
