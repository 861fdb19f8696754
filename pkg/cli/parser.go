package cli

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Record is one row/object from an input file: arbitrary keys, one of which
// holds the raw Morse message.
type Record map[string]string

// Message pairs the raw Morse text with the record it came from.
type Message struct {
	Raw        string
	Attributes Record
}

// parseMessages dispatches on the file extension; CSV is the fallback for
// everything that is not .json, as tab/comma variants share the reader.
func parseMessages(cmd *BatchCmd, filepath string, onEachMessage func(msg *Message) error) error {
	if strings.HasSuffix(strings.ToLower(filepath), ".json") {
		return parseJson(cmd, filepath, onEachMessage)
	}
	return parseCsv(cmd, filepath, onEachMessage)
}

func parseJson(cmd *BatchCmd, filepath string, onEachMessage func(msg *Message) error) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)

	// read opening bracket of the array
	if _, err = decoder.Token(); err != nil {
		return errors.Wrapf(err, "reading JSON array from %s", filepath)
	}

	// decode each element of the array
	for decoder.More() {
		record := Record{}
		if err := decoder.Decode(&record); err != nil {
			return errors.Wrapf(err, "decoding record from %s", filepath)
		}
		msg, err := parseMessage(record, cmd)
		if err != nil {
			return err
		}
		if err := onEachMessage(msg); err != nil {
			return err
		}
	}

	// read closing bracket of the array
	if _, err = decoder.Token(); err != nil {
		return errors.Wrapf(err, "reading JSON array from %s", filepath)
	}

	return nil
}

func parseCsv(cmd *BatchCmd, filepath string, onEachMessage func(msg *Message) error) error {
	file, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// first line is the header, it gives us the key mapping
	headers, err := reader.Read()
	if err != nil {
		return errors.Wrapf(err, "reading CSV header from %s", filepath)
	}

	for {
		recordData, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "reading CSV record from %s", filepath)
		}

		record := make(Record)
		for i, value := range recordData {
			record[headers[i]] = value
		}

		msg, err := parseMessage(record, cmd)
		if err != nil {
			return err
		}
		if err := onEachMessage(msg); err != nil {
			return err
		}
	}

	return nil
}

// parseMessage pulls the raw message out of a record. A missing key is a
// file-shape problem and fails the whole run; an empty message is fine, the
// decoder is total.
func parseMessage(record Record, cmd *BatchCmd) (*Message, error) {
	raw, found := record[cmd.MessageKey]
	if !found {
		return nil, errors.Errorf("record has no %q key: %v", cmd.MessageKey, record)
	}
	return &Message{
		Raw:        raw,
		Attributes: record,
	}, nil
}
