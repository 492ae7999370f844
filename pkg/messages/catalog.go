package messages

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formulate/pkg/rules"
)

// Template builds a factory from a message template.
// Supported placeholders: {field}, {label}, {value} and {0}, {1}, ... for rule arguments.
func Template(text string) rules.MessageFactory {
	return func(c rules.Context) string {
		pairs := []string{
			"{field}", c.Field,
			"{label}", Label(c),
			"{value}", rules.String(c.Value),
		}
		for i, a := range c.Args {
			pairs = append(pairs, "{"+strconv.Itoa(i)+"}", a)
		}
		return strings.NewReplacer(pairs...).Replace(text)
	}
}

// ParseCatalog decodes a YAML mapping of rule name to message template.
func ParseCatalog(r io.Reader) (map[string]rules.MessageFactory, error) {
	var raw map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]rules.MessageFactory{}, nil
		}
		return nil, errors.Join(ErrFailedToParseCatalog, err)
	}

	factories := make(map[string]rules.MessageFactory, len(raw))
	for rule, text := range raw {
		if strings.TrimSpace(text) == "" {
			return nil, fmt.Errorf("%w: %q", ErrEmptyTemplate, rule)
		}
		factories[rule] = Template(text)
	}
	return factories, nil
}

// LoadYAML merges a YAML catalog over the registry.
func (r *Registry) LoadYAML(in io.Reader) error {
	factories, err := ParseCatalog(in)
	if err != nil {
		return err
	}
	r.Merge(factories)
	return nil
}
