package fixtures

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"searchpanel/internal/domain"
)

var (
	ErrUnknownType  = errors.New("unknown result type")
	ErrInvalidField = errors.New("field not valid for result type")
	ErrMissingName  = errors.New("result has no name")
	ErrDuplicateID  = errors.New("duplicate result id")
)

// file is the on-disk layout of a result set
type file struct {
	Results []record `toml:"results"`
}

// record is the flat form of a result. Pointer fields tell "absent" from
// "zero" so that fields foreign to the type can be rejected.
type record struct {
	ID        string  `toml:"id"`
	Type      string  `toml:"type"`
	Name      string  `toml:"name"`
	Subtitle  *string `toml:"subtitle"`
	Avatar    *string `toml:"avatar"`
	Active    *bool   `toml:"active"`
	Location  *string `toml:"location"`
	Timestamp *string `toml:"timestamp"`
	FileCount *int    `toml:"file_count"`
}

// LoadFile reads a TOML result set from path
func LoadFile(path string) ([]domain.SearchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}
	results, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return results, nil
}

// Decode parses a TOML result set
func Decode(data []byte) ([]domain.SearchResult, error) {
	var f file
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse results: %w", err)
	}

	seen := make(map[string]bool, len(f.Results))
	results := make([]domain.SearchResult, 0, len(f.Results))
	for i, rec := range f.Results {
		r, err := rec.toResult()
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i+1, err)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("result %d: %w: %s", i+1, ErrDuplicateID, r.ID)
		}
		seen[r.ID] = true
		results = append(results, r)
	}
	return results, nil
}

func (rec record) toResult() (domain.SearchResult, error) {
	if rec.Name == "" {
		return domain.SearchResult{}, ErrMissingName
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}

	var item domain.Item
	switch domain.Kind(rec.Type) {
	case domain.KindPerson:
		if err := rec.reject(
			field{"location", rec.Location != nil},
			field{"timestamp", rec.Timestamp != nil},
			field{"file_count", rec.FileCount != nil},
		); err != nil {
			return domain.SearchResult{}, err
		}
		item = domain.Person{Subtitle: deref(rec.Subtitle), Avatar: deref(rec.Avatar), Active: rec.Active != nil && *rec.Active}

	case domain.KindFolder:
		if err := rec.rejectPersonFields(); err != nil {
			return domain.SearchResult{}, err
		}
		count := 0
		if rec.FileCount != nil {
			count = *rec.FileCount
		}
		item = domain.Folder{Location: deref(rec.Location), Timestamp: deref(rec.Timestamp), FileCount: count}

	case domain.KindFile, domain.KindVideo:
		if err := rec.rejectPersonFields(); err != nil {
			return domain.SearchResult{}, err
		}
		if err := rec.reject(field{"file_count", rec.FileCount != nil}); err != nil {
			return domain.SearchResult{}, err
		}
		if domain.Kind(rec.Type) == domain.KindFile {
			item = domain.File{Location: deref(rec.Location), Timestamp: deref(rec.Timestamp)}
		} else {
			item = domain.Video{Location: deref(rec.Location), Timestamp: deref(rec.Timestamp)}
		}

	default:
		return domain.SearchResult{}, fmt.Errorf("%w: %q", ErrUnknownType, rec.Type)
	}

	return domain.SearchResult{ID: id, Name: rec.Name, Item: item}, nil
}

func (rec record) rejectPersonFields() error {
	return rec.reject(
		field{"subtitle", rec.Subtitle != nil},
		field{"avatar", rec.Avatar != nil},
		field{"active", rec.Active != nil},
	)
}

type field struct {
	name    string
	present bool
}

// reject fails on the first field that is present
func (rec record) reject(fields ...field) error {
	for _, f := range fields {
		if f.present {
			return fmt.Errorf("%w: %s on %s", ErrInvalidField, f.name, rec.Type)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
