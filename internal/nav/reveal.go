package nav

import "time"

// Style values applied to elements. They mirror the css properties the host surface animates.
const (
	StyleOpacity   = "opacity"
	StyleTransform = "transform"

	hiddenOpacity    = "0"
	hiddenTransform  = "translateY(30px)"
	visibleOpacity   = "1"
	visibleTransform = "translateY(0)"
)

// RevealDelay is the delay before the element at position idx is revealed.
func RevealDelay(element Element, idx int, stagger time.Duration) time.Duration {
	if delay, ok := element.Delay(); ok {
		return delay
	}

	return time.Duration(idx) * stagger
}

// Hide puts an element into its pre-reveal state.
func Hide(element Element) {
	element.SetVisible(false)
	element.SetStyle(StyleOpacity, hiddenOpacity)
	element.SetStyle(StyleTransform, hiddenTransform)
}

// Show puts an element into its revealed state.
func Show(element Element) {
	element.SetStyle(StyleOpacity, visibleOpacity)
	element.SetStyle(StyleTransform, visibleTransform)
	element.SetVisible(true)
}

// reveal resets every element of the section and stages the staggered reveal again, so each
// visit replays the same animation.
func (n *Navigator) reveal(index int) {
	n.generation++
	generation := n.generation
	elements := n.sections[index].Elements()

	for _, element := range elements {
		Hide(element)
	}

	for idx, element := range elements {
		delay := RevealDelay(element, idx, n.timing.Stagger)
		n.sched.After(delay, func() {
			if generation != n.generation {
				return
			}

			Show(element)
		})
	}
}
