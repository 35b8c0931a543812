// Package specfile reads machine descriptions from YAML, TOML or JSON files.
//
// The keys match the code generator parameters:
//
//	type: Motor
//	states: [IDLE, RUN]
//	inputs: [START, STOP]
//	fopts: {type: MotorOpts, name: motor}
//	transitionmask: {IDLE: [RUN]}
//	routes: {IDLE: {START: RUN}, RUN: {STOP: IDLE}}
package specfile

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/enetx/dfsm"
	"github.com/enetx/g"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a description file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// Document is the on-disk shape of a machine description.
type Document struct {
	Type           string                       `json:"type"           yaml:"type"           toml:"type"`
	States         []string                     `json:"states"         yaml:"states"         toml:"states"`
	Inputs         []string                     `json:"inputs"         yaml:"inputs"         toml:"inputs"`
	Fopts          Fopts                        `json:"fopts"          yaml:"fopts"          toml:"fopts"`
	TransitionMask map[string][]string          `json:"transitionmask" yaml:"transitionmask" toml:"transitionmask"`
	Routes         map[string]map[string]string `json:"routes"         yaml:"routes"         toml:"routes"`
}

// Fopts names the options payload.
type Fopts struct {
	Type string `json:"type" yaml:"type" toml:"type"`
	Name string `json:"name" yaml:"name" toml:"name"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, filepath.Ext(path))
	}
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (Document, error) {
	if len(data) == 0 {
		return Document{}, ErrNoSource
	}

	var (
		doc Document
		err error
	)

	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &doc)
	case TOML:
		err = toml.Unmarshal(data, &doc)
	case JSON:
		err = json.Unmarshal(data, &doc)
	default:
		return Document{}, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, format)
	}

	if err != nil {
		return Document{}, fmt.Errorf("%w (%s): %w", ErrDecode, format, err)
	}

	return doc, nil
}

// Read decodes everything from r.
func Read(r io.Reader, format Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read machine description: %w", err)
	}

	return Decode(data, format)
}

// Load reads and decodes the file at path.
func Load(path string) (Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Document{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read machine description '%s': %w", path, err)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return Document{}, fileError(err, path)
	}

	return doc, nil
}

// LoadModel loads the file at path and builds its model.
func LoadModel(path string) (*dfsm.Model, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

// Spec converts the document to a dfsm.Spec.
func (d Document) Spec() dfsm.Spec {
	spec := dfsm.Spec{
		Type:    g.String(d.Type),
		States:  toSlice(d.States),
		Inputs:  toSlice(d.Inputs),
		Options: dfsm.Options{Type: g.String(d.Fopts.Type), Name: g.String(d.Fopts.Name)},
	}

	if len(d.TransitionMask) != 0 {
		spec.Mask = g.NewMap[g.String, g.Slice[g.String]](g.Int(len(d.TransitionMask)))
		for from, to := range d.TransitionMask {
			spec.Mask.Set(g.String(from), toSlice(to))
		}
	}

	if len(d.Routes) != 0 {
		spec.Routes = g.NewMap[g.String, g.Map[g.String, g.String]](g.Int(len(d.Routes)))
		for from, byInput := range d.Routes {
			routes := g.NewMap[g.String, g.String](g.Int(len(byInput)))
			for input, to := range byInput {
				routes.Set(g.String(input), g.String(to))
			}

			spec.Routes.Set(g.String(from), routes)
		}
	}

	return spec
}

// Build validates the document into a model.
func (d Document) Build() (*dfsm.Model, error) {
	return dfsm.Build(d.Spec())
}

func toSlice(in []string) g.Slice[g.String] {
	if in == nil {
		return nil
	}

	out := make(g.Slice[g.String], 0, len(in))
	for _, s := range in {
		out.Push(g.String(s))
	}

	return out
}
