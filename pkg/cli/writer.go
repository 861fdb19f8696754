package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Stats counts what a batch run did, for the end-of-run summary.
type Stats struct {
	Input        int // records read
	Decoded      int // records decoded (totality: always equals Input)
	Placeholders int // '?' substitutions across all decoded messages
	Output       int // records written
}

// Writer emits decoded records to a file in the output directory.
type Writer interface {
	Write(records []Record, directory string) error
}

// newWriter picks a writer for the --format flag. The flag is enum-checked
// by kong, anything else is a bug.
func newWriter(format string, stats *Stats) Writer {
	switch format {
	case "json":
		return &JsonWriter{Stats: stats}
	case "csv":
		return &CsvWriter{Stats: stats}
	case "tsv":
		return &CsvWriter{isTSV: true, Stats: stats}
	}
	panic("[BUG] newWriter: unknown format " + format)
}

type JsonWriter struct {
	Stats *Stats
}

func (w *JsonWriter) Write(records []Record, directory string) error {
	path := filepath.Join(directory, "decoded.json")
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)

	if _, err = file.Write([]byte("[")); err != nil {
		return err
	}
	for i, record := range records {
		if i > 0 {
			if _, err = file.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err = encoder.Encode(record); err != nil {
			return errors.Wrapf(err, "encoding record %d", i)
		}
		w.Stats.Output++
	}
	if _, err = file.Write([]byte("]")); err != nil {
		return err
	}
	return nil
}

type CsvWriter struct {
	isTSV bool
	Stats *Stats
}

func (w *CsvWriter) Write(records []Record, directory string) error {
	name := "decoded.csv"
	separator := ','
	if w.isTSV {
		name = "decoded.tsv"
		separator = '\t'
	}

	path := filepath.Join(directory, name)
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = separator
	defer writer.Flush()

	if len(records) == 0 {
		return nil
	}

	// all records share the same key set, the first one names the columns
	headers := lo.Keys(records[0])
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, record := range records {
		row := lo.Map(headers, func(header string, _ int) string {
			return record[header]
		})
		if err := writer.Write(row); err != nil {
			return err
		}
		w.Stats.Output++
	}

	return nil
}
