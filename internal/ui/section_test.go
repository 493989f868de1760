package ui

import (
	"testing"

	"github.com/leighmacdonald/folio/internal/profile"
	"github.com/stretchr/testify/require"
)

func TestRenderProjectLink(t *testing.T) {
	block := profile.Block{
		Kind:  profile.BlockProject,
		Title: "Storefront",
		Body:  "Shop",
		Tags:  []string{"Go"},
		Link:  "https://github.com/example/storefront",
	}

	require.Contains(t, renderProject(block, 72), "https://github.com/example/storefront")

	block.Link = ""
	require.NotContains(t, renderProject(block, 72), "https://")
}
