package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/antui/internal/logger"
	antuierrors "github.com/alexisbeaulieu97/antui/pkg/errors"
)

// Format is the encoding of a layout document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// FormatFor picks the document format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported document extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Load reads, decodes and validates a layout document.
func Load(path string, log *logger.Logger) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, antuierrors.NewParseError(path, 0, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, antuierrors.NewParseError(path, 0, err)
	}

	doc, err := Parse(data, format, path)
	if err != nil {
		log.WithFields(map[string]any{"path": path}).Error(err, "layout document rejected")
		return nil, err
	}

	log.WithFields(map[string]any{
		"path":       path,
		"format":     string(format),
		"rows":       len(doc.Rows),
		"placements": len(doc.Placements),
	}).Debug("layout document loaded")
	return doc, nil
}

// Parse decodes and validates a document. Unknown keys are rejected. path is
// only used in error messages.
func Parse(data []byte, format Format, path string) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, antuierrors.NewParseError(path, extractLine(err), err)
		}
	case FormatTOML:
		meta, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, antuierrors.NewParseError(path, tomlLine(err), err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return nil, antuierrors.NewParseError(path, 0, fmt.Errorf("unknown key %q", undecoded[0].String()))
		}
	default:
		return nil, antuierrors.NewParseError(path, 0, fmt.Errorf("unknown format %q", format))
	}

	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

func tomlLine(err error) int {
	var parseErr toml.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Position.Line
	}
	return extractLine(err)
}
