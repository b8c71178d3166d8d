package components

import (
	"github.com/alexisbeaulieu97/uikit/internal/ui"
)

// Card parts are plain containers and texts with the card's classes.
//
//	NewCard(
//		NewCardHeader(NewCardTitle("Title"), NewCardDescription("Subtitle")),
//		NewCardContent(NewText("Body")),
//		NewCardFooter(NewButton("OK")),
//	)
const (
	cardClasses        = "rounded-2xl border border-border bg-card"
	cardHeaderClasses  = "p-8"
	cardContentClasses = "p-8 pt-0"
	cardFooterClasses  = "flex flex-row items-center p-8 pt-0"
)

// NewCard creates the bordered card surface.
func NewCard(children ...ui.Renderable) *Container {
	return NewContainer(children...).withBase(cardClasses)
}

// NewCardHeader creates the padded header section.
func NewCardHeader(children ...ui.Renderable) *Container {
	return NewContainer(children...).withBase(cardHeaderClasses)
}

// NewCardContent creates the body section. It has no top padding so it
// sits under the header.
func NewCardContent(children ...ui.Renderable) *Container {
	return NewContainer(children...).withBase(cardContentClasses)
}

// NewCardFooter creates a horizontal footer row.
func NewCardFooter(children ...ui.Renderable) *Container {
	return NewContainer(children...).withBase(cardFooterClasses).WithDirection(DirectionHorizontal).WithGap(1)
}

// NewCardTitle creates a title2 text.
func NewCardTitle(title string) *Text {
	return NewText(title).WithVariant("title2").WithClassName("text-foreground")
}

// NewCardDescription creates a muted subhead.
func NewCardDescription(description string) *Text {
	return NewText(description).WithVariant("subhead").WithClassName("text-muted-foreground")
}
