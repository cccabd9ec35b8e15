package codec

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/docfold/doctree"
	"gopkg.in/yaml.v3"
)

// Format represents document encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf returns the format implied by the location extension, YAML unless .json
func FormatOf(location string) Format {
	if strings.EqualFold(path.Ext(location), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Marshal encodes a crate and its export set
func Marshal(crate doctree.Crate, exported doctree.NodeSet, format Format) ([]byte, error) {
	doc, err := NewDocument(crate, exported)
	if err != nil {
		return nil, err
	}
	if format == FormatJSON {
		return json.MarshalIndent(doc, "", "  ")
	}
	buf := &bytes.Buffer{}
	encoder := yaml.NewEncoder(buf)
	encoder.SetIndent(2)
	if err = encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err = encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a crate and its export set
func Unmarshal(data []byte, format Format) (doctree.Crate, doctree.NodeSet, error) {
	doc := &Document{}
	var err error
	if format == FormatJSON {
		err = json.Unmarshal(data, doc)
	} else {
		err = yaml.Unmarshal(data, doc)
	}
	if err != nil {
		return doctree.Crate{}, nil, fmt.Errorf("failed to decode %v document: %w", format, err)
	}
	return doc.Decode()
}

// Load reads a crate document from URL
func Load(ctx context.Context, fs afs.Service, URL string) (doctree.Crate, doctree.NodeSet, error) {
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return doctree.Crate{}, nil, fmt.Errorf("failed to load %v: %w", URL, err)
	}
	crate, exported, err := Unmarshal(data, FormatOf(URL))
	if err != nil {
		return crate, nil, fmt.Errorf("failed to load %v: %w", URL, err)
	}
	return crate, exported, nil
}

// Store writes a crate document to URL
func Store(ctx context.Context, fs afs.Service, URL string, crate doctree.Crate, exported doctree.NodeSet) error {
	data, err := Marshal(crate, exported, FormatOf(URL))
	if err != nil {
		return err
	}
	if err = fs.Upload(ctx, URL, 0o644, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to store %v: %w", URL, err)
	}
	return nil
}
