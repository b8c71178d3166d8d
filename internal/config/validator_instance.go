package config

import (
	"go/token"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("go_ident", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			return token.IsIdentifier(name) && !token.IsKeyword(name)
		})

		_ = v.RegisterValidation("go_file", func(fl validator.FieldLevel) bool {
			return isValidFilePath(fl.Field().String(), ".go")
		})

		_ = v.RegisterValidation("css_path", func(fl validator.FieldLevel) bool {
			return isValidFilePath(fl.Field().String(), ".css")
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidFilePath performs syntactic validation of file paths without filesystem access.
func isValidFilePath(path, ext string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}

	if strings.Contains(path, "\x00") {
		return false
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "/..") {
		return false
	}

	return strings.EqualFold(filepath.Ext(path), ext)
}
