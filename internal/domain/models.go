package domain

import (
	"os"
	"time"
)

// Item is one selectable entry of the listed directory
type Item struct {
	Path    string
	Name    string // path relative to the scanned directory
	IsDir   bool
	Size    int64
	Mode    os.FileMode
	ModTime time.Time
}

// ItemList is the backing list handed to the selection controller.
// Each scan produces a new slice, which the controller treats as a new list.
type ItemList []Item

// Len returns the number of items
func (l ItemList) Len() int {
	return len(l)
}

// Paths returns the paths of the items at the given indexes, skipping invalid ones
func (l ItemList) Paths(indexes []int) []string {
	paths := make([]string, 0, len(indexes))
	for _, i := range indexes {
		if i >= 0 && i < len(l) {
			paths = append(paths, l[i].Path)
		}
	}
	return paths
}

// ScanProgress represents the current scanning state
type ScanProgress struct {
	IsScanning bool
	ItemsFound int
	Dir        string
}
