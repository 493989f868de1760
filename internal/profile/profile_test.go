package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leighmacdonald/folio/internal/profile"
	"github.com/stretchr/testify/require"
)

const document = `
name: Jo Park
title: Systems Engineer
stats:
  - label: Talks
    value: 12
skills:
  - name: Go
    level: 95
projects:
  - name: second
    description: "  runs later  "
    order: 2
  - name: first
    description: runs first
    url: https://example.com/first
    order: 1
contact:
  email: jo@example.com
`

func TestParse(t *testing.T) {
	prof, err := profile.Parse([]byte(document))
	require.NoError(t, err)
	require.Equal(t, "Jo Park", prof.Name)
	require.Len(t, prof.Stats, 1)
	require.Equal(t, 12, prof.Stats[0].Value)
	require.Len(t, prof.Projects, 2)
}

func TestParseInvalid(t *testing.T) {
	_, err := profile.Parse([]byte("title: nobody\n"))
	require.ErrorIs(t, err, profile.ErrProfileInvalid)

	_, err = profile.Parse([]byte("name: x\nskills:\n  - name: y\n    level: 101\n"))
	require.ErrorIs(t, err, profile.ErrProfileInvalid)

	_, err = profile.Parse([]byte("name: x\nunknown_field: 1\n"))
	require.ErrorIs(t, err, profile.ErrProfileRead)
}

func TestLoad(t *testing.T) {
	prof, err := profile.Load("")
	require.NoError(t, err)
	require.Equal(t, profile.Default(), prof)

	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o600))
	prof, err = profile.Load(path)
	require.NoError(t, err)
	require.Equal(t, "Systems Engineer", prof.Title)

	_, err = profile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, profile.ErrProfileRead)
}

func TestLayoutDefault(t *testing.T) {
	sections := profile.Layout(profile.Default())
	ids := make([]string, len(sections))
	for i, section := range sections {
		ids[i] = section.ID
	}

	require.Equal(t, []string{
		profile.SectionHero, profile.SectionAbout, profile.SectionSkills,
		profile.SectionProjects, profile.SectionContact,
	}, ids)

	hero := sections[0]
	var typed *profile.Block
	for i := range hero.Blocks {
		if hero.Blocks[i].Kind == profile.BlockTyped {
			typed = &hero.Blocks[i]
		}
	}
	require.NotNil(t, typed)
	require.True(t, typed.HasDelay)
}

func TestLayoutOmitsEmpty(t *testing.T) {
	prof, err := profile.Parse([]byte(document))
	require.NoError(t, err)

	sections := profile.Layout(prof)
	require.Len(t, sections, 5)

	projects := sections[3]
	require.Equal(t, profile.SectionProjects, projects.ID)
	require.Equal(t, "first", projects.Blocks[1].Title)
	require.Equal(t, "https://example.com/first", projects.Blocks[1].Link)
	require.Equal(t, "runs later", projects.Blocks[2].Body)

	minimal := profile.Layout(profile.Profile{Name: "Solo"})
	require.Len(t, minimal, 1)
	require.Equal(t, profile.SectionHero, minimal[0].ID)
}
