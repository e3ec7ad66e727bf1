// Package config loads batch files describing several modules to generate
// in one run.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/soypat/eurorack"
	"github.com/soypat/eurorack/render"
	"gopkg.in/yaml.v3"
)

// Batch is a validated batch file.
type Batch struct {
	// Output is the directory files are written to.
	Output  string
	Formats []render.Format
	Preview render.PNGOptions
	Modules []Module
}

// Module is a named generator input. Name is the output file base name.
type Module struct {
	Name  string
	Input eurorack.Input
}

// LoadBatch reads and validates the batch file at path.
func LoadBatch(path string) (Batch, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Batch{}, &Error{
			Op:   "config.load_batch",
			Kind: KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return ParseBatch(b, path)
}

// ParseBatch decodes and validates batch file contents. path is only used
// in errors.
func ParseBatch(data []byte, path string) (Batch, error) {
	var dto YAMLBatch
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return Batch{}, &Error{
			Op:   "config.parse_batch",
			Kind: KindInvalid,
			Path: path,
			Err:  err,
		}
	}
	batch, err := MapBatch(dto)
	if err != nil {
		return Batch{}, &Error{
			Op:   "config.parse_batch",
			Kind: KindInvalid,
			Path: path,
			Err:  err,
		}
	}
	return batch, nil
}

// MapBatch validates dto and fills in defaults. Only the file structure is
// checked: module geometry is never rejected.
func MapBatch(dto YAMLBatch) (Batch, error) {
	batch := Batch{
		Output: dto.Output,
		Preview: render.PNGOptions{
			DPI:   dto.Preview.DPI,
			Width: dto.Preview.Width,
		},
	}
	if batch.Output == "" {
		batch.Output = "."
	}
	if batch.Preview.DPI < 0 || batch.Preview.Width < 0 {
		return Batch{}, errors.New("preview: dpi and width must not be negative")
	}

	if len(dto.Formats) == 0 {
		batch.Formats = []render.Format{render.KiCad}
	}
	seenFormat := map[render.Format]bool{}
	for i, name := range dto.Formats {
		f, err := render.ParseFormat(name)
		if err != nil {
			return Batch{}, fmt.Errorf("formats[%d]: %w", i, err)
		}
		if !seenFormat[f] {
			batch.Formats = append(batch.Formats, f)
		}
		seenFormat[f] = true
	}

	if len(dto.Modules) == 0 {
		return Batch{}, errors.New("modules: at least one module is required")
	}
	seenName := map[string]bool{}
	for i, m := range dto.Modules {
		if m.Name == "" {
			return Batch{}, fmt.Errorf("modules[%d].name: required", i)
		}
		if seenName[m.Name] {
			return Batch{}, fmt.Errorf("modules[%d].name: duplicate %q", i, m.Name)
		}
		seenName[m.Name] = true
		batch.Modules = append(batch.Modules, Module{
			Name: m.Name,
			Input: eurorack.InputFromRecord(map[string]string{
				"type":   m.Type,
				"hp":     m.HP,
				"rad":    m.Rad,
				"mh_w":   m.MHW,
				"pcb_mh": m.PCBMH,
			}),
		})
	}
	return batch, nil
}
