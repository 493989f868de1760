package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/folio/internal/effect"
	"github.com/leighmacdonald/folio/internal/nav"
	"github.com/leighmacdonald/folio/internal/profile"
	"github.com/leighmacdonald/folio/internal/schedule"
	"github.com/leighmacdonald/folio/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

const maxContentWidth = 72

// blockView renders one profile.Block and implements nav.Element.
type blockView struct {
	block   profile.Block
	visible bool
	style   map[string]string
	// effect is started the first time the owning section becomes current.
	effect effect.Effect
}

func newBlockView(block profile.Block) *blockView {
	view := &blockView{block: block, style: map[string]string{}}

	switch block.Kind {
	case profile.BlockStat:
		view.effect = effect.NewCounter(block.Value, nil)
	case profile.BlockTyped:
		view.effect = effect.NewTypewriter(block.Body, nil)
	}

	return view
}

func (b *blockView) SetStyle(property string, value string) {
	b.style[property] = value
}

func (b *blockView) SetVisible(visible bool) {
	b.visible = visible
}

func (b *blockView) Delay() (time.Duration, bool) {
	return b.block.Delay, b.block.HasDelay
}

// shown reports whether the block is revealed. An element is hidden until both its visibility
// flag and its opacity say otherwise.
func (b *blockView) shown() bool {
	return b.visible && b.style[nav.StyleOpacity] != "0"
}

func (b *blockView) Render(width int) string {
	content := b.content(width)
	if b.shown() {
		return content
	}

	// Keep the footprint so revealing does not shift the layout.
	height := lipgloss.Height(content)

	return strings.Repeat("\n", max(height-1, 0))
}

func (b *blockView) content(width int) string {
	block := b.block
	switch block.Kind {
	case profile.BlockHeading:
		return styles.Heading.Render(block.Title)
	case profile.BlockAvatar:
		return styles.Avatar.Render(block.Body)
	case profile.BlockTyped:
		typed := block.Body
		if writer, ok := b.effect.(*effect.Typewriter); ok {
			typed = writer.Visible()
			if writer.State() != effect.Done {
				return styles.Typed.Render(typed) + styles.Cursor.Render("▌")
			}
		}

		return styles.Typed.Render(typed)
	case profile.BlockText:
		return styles.Body.Render(wordwrap.String(block.Body, width))
	case profile.BlockStat:
		value := block.Value
		if counter, ok := b.effect.(*effect.Counter); ok {
			value = counter.Value()
		}

		return lipgloss.JoinHorizontal(lipgloss.Top,
			styles.StatValue.Render(humanize.Comma(int64(value))),
			styles.StatLabel.Render(block.Title))
	case profile.BlockSkill:
		return renderSkill(block, width)
	case profile.BlockProject:
		return renderProject(block, width)
	case profile.BlockContact:
		icon := styles.IconEmail
		if block.Title == "Location" {
			icon = styles.IconLocation
		}

		return styles.DetailRow(icon+" "+block.Title, block.Body)
	case profile.BlockLink:
		return styles.DetailRow(styles.IconLink+" "+block.Title, block.Body)
	default:
		return block.Body
	}
}

func renderSkill(block profile.Block, width int) string {
	barWidth := max(min(width-lipgloss.Width(styles.SkillName.Render(""))-6, 40), 10)
	filled := barWidth * block.Value / 100

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.SkillName.Render(block.Title),
		styles.SkillBar.Render(strings.Repeat("█", filled)),
		styles.SkillRest.Render(strings.Repeat("░", barWidth-filled)),
		styles.Faint.Render(fmt.Sprintf(" %3d%%", block.Value)))
}

func renderProject(block profile.Block, width int) string {
	inner := max(width-4, 10)
	tags := make([]string, len(block.Tags))
	for idx, tag := range block.Tags {
		tags[idx] = styles.TagStyle.Render(tag)
	}

	parts := []string{
		styles.ProjectTitle.Render(block.Title),
		styles.Body.Render(wordwrap.String(block.Body, inner)),
	}
	if len(tags) > 0 {
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, tags...))
	}

	if block.Link != "" {
		parts = append(parts, styles.Faint.Render(styles.IconLink+" "+block.Link))
	}

	return styles.ProjectCard.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// sectionView is a full-viewport panel and implements nav.Section.
type sectionView struct {
	spec    profile.SectionSpec
	blocks  []*blockView
	active  bool
	visited bool
}

func newSectionView(spec profile.SectionSpec) *sectionView {
	view := &sectionView{spec: spec}
	for _, block := range spec.Blocks {
		view.blocks = append(view.blocks, newBlockView(block))
	}

	return view
}

func (s *sectionView) SetActive(active bool) {
	s.active = active
}

func (s *sectionView) Elements() []nav.Element {
	elements := make([]nav.Element, len(s.blocks))
	for idx, block := range s.blocks {
		elements[idx] = block
	}

	return elements
}

// visit starts the block effects the first time the section is shown.
func (s *sectionView) visit(sched schedule.Scheduler) {
	if s.visited {
		return
	}

	s.visited = true
	for _, block := range s.blocks {
		if block.effect != nil {
			block.effect.Start(sched)
		}
	}
}

// Render draws the section centered in a width x height box. When revealAll is set hidden
// blocks are drawn anyway.
func (s *sectionView) Render(width int, height int, revealAll bool) string {
	contentWidth := max(min(width-4, maxContentWidth), 10)
	rows := make([]string, 0, len(s.blocks)+1)
	rows = append(rows, styles.SectionTitle.Render(strings.ToUpper(s.spec.Title)))

	for _, block := range s.blocks {
		if revealAll {
			rows = append(rows, block.content(contentWidth))
		} else {
			rows = append(rows, block.Render(contentWidth))
		}
	}

	body := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
