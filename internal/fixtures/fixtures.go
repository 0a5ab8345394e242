// Package fixtures provides the built-in result set and a loader for
// result sets kept in TOML files.
package fixtures

import "searchpanel/internal/domain"

// DefaultSourceName identifies the built-in result set in logs
const DefaultSourceName = "builtin"

// Default returns the built-in five-item result set, in display order
func Default() []domain.SearchResult {
	return []domain.SearchResult{
		{
			ID:   "1",
			Name: "Randall Johnsson",
			Item: domain.Person{
				Subtitle: "Active now",
				Avatar:   "/professional-man.png",
				Active:   true,
			},
		},
		{
			ID:   "2",
			Name: "Random Michal Folder",
			Item: domain.Folder{
				Location:  "Photos",
				Timestamp: "12m ago",
				FileCount: 12,
			},
		},
		{
			ID:   "3",
			Name: "creative_file_frankies.jpg",
			Item: domain.File{
				Location:  "Photos/Assets",
				Timestamp: "12m ago",
			},
		},
		{
			ID:   "4",
			Name: "Kristinge Karand",
			Item: domain.Person{
				Subtitle: "Active 2d ago",
				Avatar:   "/professional-woman.png",
			},
		},
		{
			ID:   "5",
			Name: "files_krande_michelle.avi",
			Item: domain.Video{
				Location:  "Videos",
				Timestamp: "12m ago",
			},
		},
	}
}
