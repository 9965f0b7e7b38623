package extract

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/lifeboard/backend/internal/storage/models"
	"github.com/lifeboard/backend/internal/timestamp"
)

// Tabular parses delimited text (or a spreadsheet's first sheet) with a
// header row into one record per data row. Cells that parse as finite
// numbers become numeric fields; everything else becomes a normalized
// categorical value. Empty and whitespace-only cells are skipped entirely,
// so they never count as numeric zero. Cells are skipped, rows are not: a
// row with no usable cells still yields a record whose summary falls back
// to the file name.
func (e *Extractor) Tabular(source models.Source, content []byte) ([]models.Record, error) {
	var rows [][]string
	var err error

	if strings.EqualFold(filepath.Ext(source.Name), ".xlsx") {
		rows, err = sheetRows(content)
	} else {
		rows, err = delimitedRows(source.Name, content)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	records := make([]models.Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		records = append(records, e.tabularRow(source, header, row))
	}
	return records, nil
}

func (e *Extractor) tabularRow(source models.Source, header, row []string) models.Record {
	numericFields := map[string]float64{}
	categoricalFields := map[string]string{}
	var textFields []string
	var keywords []string
	var dateFields []timestamp.Field
	raw := map[string]string{}

	for i, cell := range row {
		if i >= len(header) {
			break
		}
		key := strings.TrimSpace(header[i])
		value := strings.TrimSpace(cell)
		if key == "" || value == "" {
			continue
		}
		raw[key] = value
		dateFields = append(dateFields, timestamp.Field{Key: key, Value: value})

		if number, ok := parseFinite(value); ok {
			numericFields[key] = number
		} else {
			categoricalFields[key] = normalizeCategory(value)
		}

		textFields = append(textFields, fmt.Sprintf("%s: %s", key, value))
		keywords = append(keywords, e.model.Keywords(value)...)
	}

	combined := strings.Join(textFields, " | ")
	rawJSON, _ := json.Marshal(raw)

	return models.Record{
		ID:                newRecordID(),
		SourceID:          source.ID,
		Timestamp:         timestamp.Infer(dateFields),
		Summary:           truncateSummary(combined, source.Name),
		NumericFields:     numericFields,
		CategoricalFields: categoricalFields,
		TextFields:        textFields,
		Keywords:          dedupe(keywords),
		Embedding:         e.model.Embed(combined),
		Raw:               rawJSON,
	}
}

func delimitedRows(name string, content []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	if strings.EqualFold(filepath.Ext(name), ".tsv") {
		reader.Comma = '\t'
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse delimited content: %w", err)
	}
	return rows, nil
}

func sheetRows(content []byte) ([][]string, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func parseFinite(value string) (float64, bool) {
	number, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}
	return number, true
}

// dedupe keeps first occurrences, preserving order.
func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}
