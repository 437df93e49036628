// Package factfile reads host fact documents (JSON or YAML) from files or
// standard input.
package factfile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/HerbHall/netclass/pkg/models"
)

// EnvelopeKey wraps the facts in collector module output. When it is
// present and holds a mapping, that mapping is the fact document.
const EnvelopeKey = "ansible_facts"

// Stdin is the path that selects standard input.
const Stdin = "-"

// Options control how a document is turned into facts.
type Options struct {
	// StripPrefix is removed from the start of top-level keys.
	StripPrefix string
}

// Load reads facts from path, or from stdin when path is "-" or empty.
func Load(path string, stdin io.Reader, opts Options) (*models.Facts, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == Stdin {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read facts: %w", err)
	}
	return Parse(data, opts)
}

// Parse decodes a fact document, unwrapping a collector envelope and
// stripping the configured key prefix. Key order is preserved. A document
// starting with '{' is read as JSON, anything else as YAML.
func Parse(data []byte, opts Options) (*models.Facts, error) {
	var (
		facts *models.Facts
		err   error
	)
	if models.IsJSONObject(data) {
		facts, err = parseJSON(data)
	} else {
		facts, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}
	if opts.StripPrefix != "" {
		facts = stripPrefix(facts, opts.StripPrefix)
	}
	return facts, nil
}

func parseJSON(data []byte) (*models.Facts, error) {
	members, err := models.JSONMembers(data)
	if err != nil {
		return nil, fmt.Errorf("parse facts: %w", err)
	}
	for _, m := range members {
		if m.Key == EnvelopeKey && models.IsJSONObject(m.Value) {
			data = m.Value
			break
		}
	}
	return models.ParseFacts(data)
}

func parseYAML(data []byte) (*models.Facts, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse facts: %w", err)
	}
	if doc.Kind == 0 {
		return models.NewFacts(), nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	if inner := envelope(root); inner != nil {
		root = inner
	}

	facts := models.NewFacts()
	if err := root.Decode(facts); err != nil {
		return nil, fmt.Errorf("parse facts: %w", err)
	}
	return facts, nil
}

// envelope returns the value node of EnvelopeKey if root is a mapping
// holding it as a mapping.
func envelope(root *yaml.Node) *yaml.Node {
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == EnvelopeKey && root.Content[i+1].Kind == yaml.MappingNode {
			return root.Content[i+1]
		}
	}
	return nil
}

// stripPrefix renames prefixed keys in place of their original position.
// When both "x" and prefix+"x" exist, the later value wins.
func stripPrefix(in *models.Facts, prefix string) *models.Facts {
	out := models.NewFacts()
	for _, key := range in.Keys() {
		v, _ := in.Get(key)
		out.Set(strings.TrimPrefix(key, prefix), v)
	}
	return out
}
