package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	errs "github.com/matzehuels/gridlink/pkg/errors"
	"github.com/matzehuels/gridlink/pkg/grid"
)

// Format is a plant file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON}

var extFormats = map[string]Format{
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
}

// ParseFormat parses a format name ("toml", "yaml", "yml" or "json").
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "yml" {
		return FormatYAML, nil
	}
	if f := Format(s); slices.Contains(Formats, f) {
		return f, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q (want toml, yaml or json)", s)
}

// DetectFormat picks a format from the file extension of path.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", errs.New(errs.ErrCodeInvalidFormat, "cannot infer plant format from %q", filepath.Base(path))
}

// Decode reads a plant in format f from r. Unknown keys are rejected so
// typos in field names do not silently drop data. Decode does not validate
// the records; see [Plant.Validate] and [Build].
func Decode(r io.Reader, f Format) (*Plant, error) {
	var p Plant
	switch f {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&p)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidPlant, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errs.New(errs.ErrCodeInvalidPlant, "decode toml: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			if errors.Is(err, io.EOF) {
				return &p, nil
			}
			return nil, errs.Wrap(errs.ErrCodeInvalidPlant, err, "decode yaml")
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, trailingData("yaml", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidPlant, err, "decode json")
		}
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return nil, trailingData("json", err)
		}
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q", f)
	}
	return &p, nil
}

// trailingData reports content after the first document. err is the result
// of decoding that content, nil when it was itself a valid document.
func trailingData(format string, err error) error {
	if err == nil {
		return errs.New(errs.ErrCodeInvalidPlant, "decode %s: plant file must contain a single document", format)
	}
	return errs.Wrap(errs.ErrCodeInvalidPlant, err, "decode %s: trailing data", format)
}

// Encode writes p to w in format f.
func Encode(w io.Writer, p *Plant, f Format) error {
	switch f {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(p); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return errs.New(errs.ErrCodeInvalidFormat, "unsupported format %q", f)
	}
	return nil
}

// Load reads the plant file at path, inferring the format from its extension.
func Load(path string) (*Plant, error) {
	if err := errs.ValidatePlantPath(path); err != nil {
		return nil, err
	}
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "plant file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	p, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p, nil
}

// LoadNetwork is [Load] followed by [Build].
func LoadNetwork(path string, logger *log.Logger) (*grid.Network, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Build(p, logger)
}

// Save writes p to path, inferring the format from its extension.
func Save(path string, p *Plant) error {
	f, err := DetectFormat(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Encode(file, p, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
