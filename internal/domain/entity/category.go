package entity

import (
	"strings"
	"time"
)

const (
	// MaxCategoryDepth is the deepest level a category may occupy.
	// Roots sit at level 0, so the tree holds at most MaxCategoryDepth+1 levels.
	MaxCategoryDepth = 10

	// PathSeparator delimits ancestor ids inside a materialized path.
	PathSeparator = "/"
)

// Category is a node in the materialized-path category tree.
// Path is a slash-delimited chain of ids from the root down to (and ending
// in) this category's own id, e.g. /a/b/c. Level is 0 for roots and
// parent.Level+1 otherwise. Version backs the optimistic concurrency check.
type Category struct {
	ID          string
	Name        string
	Description string
	ParentID    string // empty for roots
	Path        string
	Level       int
	SortOrder   int
	IsActive    bool
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool { return c.ParentID == "" }

// IsDeleted reports whether the category is soft-deleted.
func (c *Category) IsDeleted() bool { return c.DeletedAt != nil }

// BuildPath appends id to parentPath. Pass "" as parentPath for roots.
func BuildPath(parentPath, id string) string {
	return parentPath + PathSeparator + id
}

// PathSegments splits a materialized path into its id segments.
func PathSegments(path string) []string {
	trimmed := strings.Trim(path, PathSeparator)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, PathSeparator)
}

// PathContainsID reports whether id appears as a segment of path.
// A candidate parent whose path contains the moving category's id is a
// descendant of it, so accepting the move would create a cycle.
func PathContainsID(path, id string) bool {
	for _, seg := range PathSegments(path) {
		if seg == id {
			return true
		}
	}
	return false
}
