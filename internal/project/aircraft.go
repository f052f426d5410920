package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/piwi3910/AirframeDesk/internal/model"
)

// AircraftExt is the extension of native aircraft files.
const AircraftExt = ".aircraft.json"

// ErrUnsupportedFormat is returned for aircraft files of unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported aircraft file format")

type aircraftFormat int

const (
	formatJSON aircraftFormat = iota
	formatYAML
)

func formatOf(path string) (aircraftFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
}

// SaveAircraft writes a committed aircraft to path, as YAML when the
// extension is .yaml or .yml and as JSON otherwise.
func SaveAircraft(path string, ac *model.Aircraft) error {
	if ac == nil {
		return errors.New("no aircraft to save")
	}
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch f {
	case formatYAML:
		data, err = yaml.Marshal(ac)
	default:
		data, err = json.MarshalIndent(ac, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode aircraft: %w", err)
	}
	return writeFile(path, data)
}

// LoadAircraft reads an aircraft written by SaveAircraft.
func LoadAircraft(path string) (*model.Aircraft, error) {
	f, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ac model.Aircraft
	switch f {
	case formatYAML:
		err = yaml.Unmarshal(data, &ac)
	default:
		err = json.Unmarshal(data, &ac)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse aircraft %s: %w", filepath.Base(path), err)
	}
	if ac.ID == "" {
		return nil, fmt.Errorf("invalid aircraft file %s: missing id", filepath.Base(path))
	}
	return &ac, nil
}
