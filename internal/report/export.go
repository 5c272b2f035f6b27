package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Veraticus/district-atlas/internal/common"
	"github.com/Veraticus/district-atlas/internal/model"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatCSV  Format = "csv"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatCSV}

var csvHeader = []string{"district", "province", "buddhist", "muslim", "christian", "hindu"}

// ParseFormat resolves a format name case-insensitively. "yml" is accepted as YAML.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML, FormatTOML, FormatCSV:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", common.ErrInvalidConfig, name)
	}
}

// Encode writes r to w. CSV carries only the demographics table.
func Encode(w io.Writer, format Format, r *Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(r)
	case FormatCSV:
		return EncodeDemographicsCSV(w, r.Demographics)
	default:
		return fmt.Errorf("%w: unsupported export format %q", common.ErrInvalidConfig, format)
	}
}

// EncodeDemographicsCSV writes rows with a header. Percentages use the
// shortest representation that parses back to the same float64.
func EncodeDemographicsCSV(w io.Writer, rows []DemographicRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{row.District, string(row.Province)}
		for _, v := range row.Composition().Values() {
			record = append(record, strconv.FormatFloat(v, 'f', -1, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// DecodeDemographicsCSV reads rows written by EncodeDemographicsCSV.
func DecodeDemographicsCSV(r io.Reader) ([]DemographicRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing CSV header", common.ErrValidation)
	}

	rows := make([]DemographicRow, 0, len(records)-1)
	for line, record := range records[1:] {
		values := make([]float64, len(model.Categories))
		for i := range values {
			v, err := strconv.ParseFloat(record[2+i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", common.ErrValidation, line+2, err)
			}
			values[i] = v
		}
		rows = append(rows, DemographicRow{
			District:  record[0],
			Province:  model.Province(record[1]),
			Buddhist:  values[0],
			Muslim:    values[1],
			Christian: values[2],
			Hindu:     values[3],
		})
	}
	return rows, nil
}
