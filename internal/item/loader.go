package item

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/shop"
	"github.com/osse101/GildedRose_Go/internal/validation"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// ErrInvalidConfig is returned for catalogs that parse but cannot stock the shop
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the JSON catalog of items the shop starts with
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	Items []Def `json:"items"`
}

// Def represents a single item definition in the JSON
type Def struct {
	Name    string `json:"name" validate:"required,max=200"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality" validate:"gte=0,lte=80"`
}

// Loader handles loading and validating item catalogs
type Loader interface {
	Load(ctx context.Context, path string) (*Config, error)
	Parse(data []byte, source string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
	validate        *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		schemaValidator: validation.NewSchemaValidator(schemaFS),
		validate:        validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load reads, parses and validates a catalog file.
// An empty path yields the built-in fixture.
func (l *itemLoader) Load(ctx context.Context, path string) (*Config, error) {
	log := logger.FromContext(ctx)

	if path == "" {
		log.Info(LogMsgUsingFixture)
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	if isYAML(path) {
		if data, err = yamlToJSON(data); err != nil {
			return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
		}
	}

	config, err := l.Parse(data, path)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(config); err != nil {
		return nil, err
	}

	log.Info(LogMsgCatalogLoaded, "path", path, "items", len(config.Items), "version", config.Version)
	return config, nil
}

// Parse checks data against the catalog schema and decodes it
func (l *itemLoader) Parse(data []byte, source string) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, ItemsSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, source, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks every definition's fields and the rule preconditions the
// daily update will enforce, so a bad catalog fails at startup rather than
// on the first tick.
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	for i := range config.Items {
		def := &config.Items[i]

		if err := l.validate.Struct(def); err != nil {
			return fmt.Errorf(ErrFmtItemInvalid, ErrInvalidConfig, i, def.Name, describe(err))
		}

		candidate := def.Item()
		if err := shop.Validate(&candidate); err != nil {
			return fmt.Errorf(ErrFmtItemRejected, ErrInvalidConfig, i, err)
		}
	}

	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtYAML, ExtYML:
		return true
	}
	return false
}

// yamlToJSON re-encodes a YAML catalog so it goes through the same schema check as JSON
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// Item converts the definition to a domain item
func (d Def) Item() domain.Item {
	return domain.Item{Name: d.Name, SellIn: d.SellIn, Quality: d.Quality}
}

// Stock builds a fresh item list owned by the caller
func (c *Config) Stock() []*domain.Item {
	items := make([]*domain.Item, len(c.Items))
	for i, def := range c.Items {
		item := def.Item()
		items[i] = &item
	}
	return items
}

// describe turns validator errors into field-level messages
func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf(ErrFmtFieldRequired, field))
		case "gte", "lte", "max":
			msgs = append(msgs, fmt.Sprintf(ErrFmtFieldRange, field))
		default:
			msgs = append(msgs, fmt.Sprintf(ErrFmtFieldInvalid, field))
		}
	}
	return strings.Join(msgs, ", ")
}
