package repository

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/model"
)

var (
	errEmptyRecord = errors.New("empty record")
	errMissingDate = errors.New("missing date")
)

type record struct {
	Date    string `yaml:"date"`
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Author  string `yaml:"author"`
}

func encodeRecord(entry model.Entry) ([]byte, error) {
	raw, err := yaml.Marshal(record{
		Date:    entry.Date.Format(model.DateLayout),
		Title:   entry.Title,
		Content: entry.Content,
		Author:  entry.Author,
	})
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return raw, nil
}

func decodeRecord(raw []byte) (model.Entry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var rec record
	if err := dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Entry{}, errEmptyRecord
		}
		return model.Entry{}, fmt.Errorf("decode record: %w", err)
	}
	if rec.Date == "" {
		return model.Entry{}, errMissingDate
	}
	date, err := model.ParseDate(rec.Date)
	if err != nil {
		return model.Entry{}, fmt.Errorf("parse record date: %w", err)
	}

	return model.NewEntry(date, rec.Title, rec.Content, rec.Author), nil
}
