package authz

import (
	"github.com/google/uuid"
	"github.com/sayberrygames/studio-api/internal/models"
)

// PageNode is a wiki page with its attached children.
type PageNode struct {
	models.WikiPage
	Children []*PageNode `json:"children"`
}

// BuildHierarchy groups a flat page list into a forest. A page whose parent
// is absent from the input (filtered out by a search, or simply missing) is
// treated as a root. Children keep the input order, so callers wanting a
// stable ordering sort the slice first. Two passes, no ancestor walks, so a
// cyclic parent chain cannot make it loop.
func BuildHierarchy(pages []models.WikiPage) []*PageNode {
	index := make(map[uuid.UUID]*PageNode, len(pages))
	for i := range pages {
		index[pages[i].ID] = &PageNode{WikiPage: pages[i], Children: []*PageNode{}}
	}

	roots := make([]*PageNode, 0, len(pages))
	for i := range pages {
		node := index[pages[i].ID]
		if pages[i].ParentID != nil {
			if parent, ok := index[*pages[i].ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}
