package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sayberrygames/studio-api/internal/models"
)

func page(id uuid.UUID, parent *uuid.UUID, slug string) models.WikiPage {
	return models.WikiPage{ID: id, ParentID: parent, Slug: slug}
}

func TestBuildHierarchy_AttachesChildrenInInputOrder(t *testing.T) {
	root := uuid.New()
	childA := uuid.New()
	childB := uuid.New()
	orphanParent := uuid.New() // not present in the input
	orphan := uuid.New()

	flat := []models.WikiPage{
		page(root, nil, "root"),
		page(childA, &root, "child-a"),
		page(childB, &root, "child-b"),
		page(orphan, &orphanParent, "orphan"),
	}

	forest := BuildHierarchy(flat)

	require.Len(t, forest, 2)
	assert.Equal(t, "root", forest[0].Slug)
	assert.Equal(t, "orphan", forest[1].Slug)

	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, "child-a", forest[0].Children[0].Slug)
	assert.Equal(t, "child-b", forest[0].Children[1].Slug)
	assert.Empty(t, forest[1].Children)
}

func TestBuildHierarchy_EmptyInput(t *testing.T) {
	assert.Empty(t, BuildHierarchy(nil))
	assert.Empty(t, BuildHierarchy([]models.WikiPage{}))
}

func TestBuildHierarchy_Deterministic(t *testing.T) {
	root := uuid.New()
	child := uuid.New()
	flat := []models.WikiPage{
		page(root, nil, "root"),
		page(child, &root, "child"),
	}

	first := BuildHierarchy(flat)
	second := BuildHierarchy(flat)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].Slug, second[0].Slug)
	require.Len(t, second[0].Children, len(first[0].Children))
	for i := range first[0].Children {
		assert.Equal(t, first[0].Children[i].Slug, second[0].Children[i].Slug)
	}
}

func TestBuildHierarchy_DeepNesting(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()
	flat := []models.WikiPage{
		page(c, &b, "c"),
		page(a, nil, "a"),
		page(b, &a, "b"),
	}

	forest := BuildHierarchy(flat)

	require.Len(t, forest, 1)
	assert.Equal(t, "a", forest[0].Slug)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "b", forest[0].Children[0].Slug)
	require.Len(t, forest[0].Children[0].Children, 1)
	assert.Equal(t, "c", forest[0].Children[0].Children[0].Slug)
}

func TestBuildHierarchy_TerminatesOnCycle(t *testing.T) {
	// Cycles are rejected at write time, but a corrupted store must not
	// make listing hang. Both nodes end up attached to each other and
	// neither becomes a root; the call still returns.
	a := uuid.New()
	b := uuid.New()
	flat := []models.WikiPage{
		page(a, &b, "a"),
		page(b, &a, "b"),
	}

	forest := BuildHierarchy(flat)
	assert.Empty(t, forest)
}
