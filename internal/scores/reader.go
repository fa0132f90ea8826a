package scores

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	ErrEmpty        = errors.New("scores source is empty")
	ErrNoToolColumn = errors.New("scores source must contain a 'tool' column")
)

// Row is one raw record keyed by CSV header name. Values stay as strings;
// numeric conversion happens at scoring time so all value errors surface
// through a single path.
type Row map[string]string

func LoadFromFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scores file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)

	headers, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read scores header: %w", err)
	}

	hasTool := false
	for _, h := range headers {
		if h == "tool" {
			hasTool = true
			break
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read scores row: %w", err)
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			row[h] = record[i]
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	if !hasTool {
		return nil, ErrNoToolColumn
	}
	return rows, nil
}
