// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Principals are opaque tokens, but the transport layer still bounds them:
// printable ASCII without whitespace, at most 128 characters.
var principalRegex = regexp.MustCompile(`^[\x21-\x7e]{1,128}$`)

// contentURIRegex accepts scheme://rest references. The scheme is not
// restricted; marketplace content commonly lives on ipfs:// or https://.
var contentURIRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://[^\s]+$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("principal", validatePrincipal)
		_ = v.RegisterValidation("content_uri", validateContentURI)
	}
}

func validatePrincipal(fl validator.FieldLevel) bool {
	return principalRegex.MatchString(fl.Field().String())
}

func validateContentURI(fl validator.FieldLevel) bool {
	return contentURIRegex.MatchString(fl.Field().String())
}
