package domain

import "strings"

// Kind is the closed set of result variants
type Kind string

const (
	KindPerson Kind = "person"
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindVideo  Kind = "video"
)

// Category groups result kinds for content filters and tabs
type Category string

const (
	CategoryFiles  Category = "files"
	CategoryPeople Category = "people"
	CategoryChats  Category = "chats"
	CategoryLists  Category = "lists"
)

// Categories lists every category in popover order
var Categories = []Category{CategoryFiles, CategoryPeople, CategoryChats, CategoryLists}

// Label returns the display label of a category
func (c Category) Label() string {
	switch c {
	case CategoryFiles:
		return "Files"
	case CategoryPeople:
		return "People"
	case CategoryChats:
		return "Chats"
	case CategoryLists:
		return "Lists"
	}
	return string(c)
}

// Item is the per-kind payload of a search result.
// Only the types in this package implement it.
type Item interface {
	Kind() Kind
	isItem()
}

// Person is a user or contact
type Person struct {
	Avatar   string
	Subtitle string
	Active   bool
}

// Folder is a directory-like container of files
type Folder struct {
	Location  string
	Timestamp string
	FileCount int
}

// File is a single document or image
type File struct {
	Location  string
	Timestamp string
}

// Video is a video clip
type Video struct {
	Location  string
	Timestamp string
}

func (Person) Kind() Kind { return KindPerson }
func (Folder) Kind() Kind { return KindFolder }
func (File) Kind() Kind   { return KindFile }
func (Video) Kind() Kind  { return KindVideo }

func (Person) isItem() {}
func (Folder) isItem() {}
func (File) isItem()   {}
func (Video) isItem()  {}

// SearchResult is one immutable entry of the result source
type SearchResult struct {
	ID   string
	Name string
	Item Item
}

// Kind returns the variant of the result ("" when Item is nil)
func (r SearchResult) Kind() Kind {
	if r.Item == nil {
		return ""
	}
	return r.Item.Kind()
}

// Category returns the category the result is filtered under
func (r SearchResult) Category() Category {
	return CategoryOf(r.Kind())
}

// MatchesQuery reports whether the name contains query, ignoring case.
// An empty query matches everything.
func (r SearchResult) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(query))
}

// CategoryOf maps a result kind to its category
func CategoryOf(k Kind) Category {
	switch k {
	case KindFolder, KindFile, KindVideo:
		return CategoryFiles
	case KindPerson:
		return CategoryPeople
	}
	return ""
}
