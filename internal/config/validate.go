package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := structValidator.Struct(c); err != nil {
		return describeValidation(err)
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.Database == c.Paths.Output {
		return errors.New("paths.output must differ from paths.database")
	}
	if c.Paths.HTMLOutput != "" && c.Paths.HTMLOutput == c.Paths.Output {
		return errors.New("paths.html_output must differ from paths.output")
	}
	if c.Paths.TemplateDir != "" {
		info, err := os.Stat(c.Paths.TemplateDir)
		if err != nil {
			return fmt.Errorf("paths.template_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("paths.template_dir %q is not a directory", c.Paths.TemplateDir)
		}
	}
	return nil
}

// describeValidation turns validator output into the section.key wording
// used by the rest of the config errors.
func describeValidation(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate config: %w", err)
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := configKey(fe.StructNamespace())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s must be set", key))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed %s=%s (got %v)", key, fe.Tag(), fe.Param(), fe.Value()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}

var configKeys = map[string]string{
	"Paths.Database":              "paths.database",
	"Paths.Output":                "paths.output",
	"Database.LockTimeoutSeconds": "database.lock_timeout_seconds",
	"Logging.Format":              "logging.format",
	"Logging.Level":               "logging.level",
}

func configKey(namespace string) string {
	namespace = strings.TrimPrefix(namespace, "Config.")
	if key, ok := configKeys[namespace]; ok {
		return key
	}
	return strings.ToLower(namespace)
}
