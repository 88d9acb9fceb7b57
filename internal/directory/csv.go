package directory

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// nameColumn is the header the exported directory files use.
const nameColumn = "Artist Name"

// ParseNames reads a directory CSV and returns the artist names from
// the "Artist Name" column, in file order, skipping blank cells. Rows
// with a different column count are tolerated; a missing header is not.
func ParseNames(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := -1
	for i, h := range header {
		if strings.TrimSpace(h) == nameColumn {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, fmt.Errorf("column %q not found in header", nameColumn)
	}

	var names []string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if col >= len(row) {
			continue
		}
		name := strings.TrimSpace(row[col])
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
