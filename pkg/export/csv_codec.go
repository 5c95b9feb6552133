package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// Dataset defines tabular content exchanged with spreadsheet files.
type Dataset struct {
	Name    string
	Headers []string
	Rows    []map[string]string
}

// CSVCodec renders Dataset records into CSV bytes and parses them back.
type CSVCodec struct{}

// NewCSVCodec builds a CSV codec.
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{}
}

// utf8BOM keeps spreadsheet applications from mangling CJK headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Render produces CSV encoded bytes for the dataset.
func (c *CSVCodec) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	buf.Write(utf8BOM)
	writer := csv.NewWriter(buf)
	if err := writer.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		record := make([]string, len(data.Headers))
		for i, header := range data.Headers {
			record[i] = row[header]
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse decodes CSV bytes into header-keyed rows. The first record is the
// header row; short records leave the trailing columns empty.
func (c *CSVCodec) Parse(data []byte) (Dataset, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return Dataset{}, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return Dataset{}, fmt.Errorf("parse csv: empty file")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(record) {
				row[header] = record[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}

	return Dataset{Headers: headers, Rows: rows}, nil
}
