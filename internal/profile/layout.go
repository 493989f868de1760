package profile

import (
	"cmp"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockText
	BlockAvatar
	BlockTyped
	BlockStat
	BlockSkill
	BlockProject
	BlockContact
	BlockLink
)

// Block is one animatable piece of a section.
type Block struct {
	Kind  BlockKind
	Title string
	Body  string
	Value int
	Tags  []string
	Link  string
	// Delay is an explicit reveal delay, used when HasDelay is set.
	Delay    time.Duration
	HasDelay bool
}

// SectionSpec describes one full-viewport section.
type SectionSpec struct {
	ID     string
	Title  string
	Blocks []Block
}

const (
	SectionHero     = "hero"
	SectionAbout    = "about"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

// Layout builds the ordered sections for a profile. Sections without content are omitted,
// the hero is always present.
func Layout(prof Profile) []SectionSpec {
	sections := []SectionSpec{heroSection(prof)}

	if about := aboutSection(prof); len(about.Blocks) > 1 {
		sections = append(sections, about)
	}

	if len(prof.Skills) > 0 {
		sections = append(sections, skillsSection(prof))
	}

	if len(prof.Projects) > 0 {
		sections = append(sections, projectsSection(prof))
	}

	if contact := contactSection(prof); len(contact.Blocks) > 1 {
		sections = append(sections, contact)
	}

	return sections
}

func heroSection(prof Profile) SectionSpec {
	section := SectionSpec{ID: SectionHero, Title: "Home"}
	if prof.Avatar != "" {
		section.Blocks = append(section.Blocks, Block{Kind: BlockAvatar, Body: prof.Avatar})
	}

	section.Blocks = append(section.Blocks, Block{Kind: BlockHeading, Title: prof.Name})
	if prof.Title != "" {
		// The title is typed out, so it shows up only after the heading has settled.
		section.Blocks = append(section.Blocks, Block{
			Kind:     BlockTyped,
			Body:     prof.Title,
			Delay:    300 * time.Millisecond,
			HasDelay: true,
		})
	}

	if prof.Tagline != "" {
		section.Blocks = append(section.Blocks, Block{Kind: BlockText, Body: prof.Tagline})
	}

	return section
}

func aboutSection(prof Profile) SectionSpec {
	section := SectionSpec{
		ID:     SectionAbout,
		Title:  "About",
		Blocks: []Block{{Kind: BlockHeading, Title: "About Me"}},
	}

	if prof.Description != "" {
		section.Blocks = append(section.Blocks, Block{Kind: BlockText, Body: prof.Description})
	}

	for _, stat := range prof.Stats {
		section.Blocks = append(section.Blocks, Block{Kind: BlockStat, Title: stat.Label, Value: stat.Value})
	}

	return section
}

func skillsSection(prof Profile) SectionSpec {
	section := SectionSpec{
		ID:     SectionSkills,
		Title:  "Skills",
		Blocks: []Block{{Kind: BlockHeading, Title: "Skills"}},
	}

	for _, skill := range prof.Skills {
		section.Blocks = append(section.Blocks, Block{Kind: BlockSkill, Title: skill.Name, Value: skill.Level})
	}

	return section
}

func projectsSection(prof Profile) SectionSpec {
	section := SectionSpec{
		ID:     SectionProjects,
		Title:  "Projects",
		Blocks: []Block{{Kind: BlockHeading, Title: "Projects"}},
	}

	projects := slices.Clone(prof.Projects)
	slices.SortStableFunc(projects, func(a, b Project) int {
		return cmp.Compare(a.Order, b.Order)
	})

	for _, project := range projects {
		section.Blocks = append(section.Blocks, Block{
			Kind:  BlockProject,
			Title: project.Name,
			Body:  strings.TrimSpace(project.Description),
			Tags:  project.Tags,
			Link:  project.URL,
		})
	}

	return section
}

func contactSection(prof Profile) SectionSpec {
	section := SectionSpec{
		ID:     SectionContact,
		Title:  "Contact",
		Blocks: []Block{{Kind: BlockHeading, Title: "Get In Touch"}},
	}

	if prof.Contact.Email != "" {
		section.Blocks = append(section.Blocks, Block{Kind: BlockContact, Title: "Email", Body: prof.Contact.Email})
	}

	if prof.Contact.Location != "" {
		section.Blocks = append(section.Blocks, Block{Kind: BlockContact, Title: "Location", Body: prof.Contact.Location})
	}

	for _, link := range prof.Contact.Links {
		section.Blocks = append(section.Blocks, Block{Kind: BlockLink, Title: link.Name, Body: link.URL})
	}

	return section
}
