package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
	"github.com/alexisbeaulieu97/uikit/internal/ui/variants"
)

// RowChevron is drawn on rows without a right element.
const RowChevron = "›"

const (
	tableHeadingClasses = "text-muted-foreground mb-4"
	tableBodyClasses    = "rounded-xl bg-card py-2 px-4"
	tableHeaderClasses  = "text-muted-foreground mt-8 mb-4 uppercase"
	tableRowClasses     = "flex flex-row items-center justify-between"
	rowContentClasses   = "p-2 flex-1 border-border flex flex-col justify-between"
)

// Table is a grouped list of rows on a card background with an optional
// heading above it. Every row but the last gets a bottom rule.
type Table struct {
	BaseComponent
	heading          string
	headingClassName string
	className        string
	children         []ui.Renderable
}

// NewTable creates a table from rows and headers.
func NewTable(children ...ui.Renderable) *Table {
	return &Table{BaseComponent: NewBaseComponent(), children: children}
}

// View renders the table with the default theme.
func (t *Table) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the table.
func (t *Table) ViewWithContext(ctx RenderContext) string {
	body := Classes(variants.Merge(tableBodyClasses, t.className))(t.ComputeStyle(ctx.Theme), ctx.Theme)
	inner := ctx
	if w := ctx.MaxWidth(); w > 0 {
		body = body.Width(w - body.GetHorizontalBorderSize())
		inner = ctx.WithConstraints(WithMaxWidth(body.GetWidth() - body.GetHorizontalPadding()))
	}

	rows := make([]string, 0, len(t.children))
	for i, child := range t.children {
		last := i == len(t.children)-1
		if row, ok := child.(*TableRow); ok {
			rows = append(rows, row.render(inner, last))
			continue
		}
		rows = append(rows, render(child, inner))
	}

	view := body.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if t.heading == "" {
		return view
	}
	heading := NewText(t.heading).WithVariant("subhead").WithClassName(variants.Merge(tableHeadingClasses, t.headingClassName))
	return lipgloss.JoinVertical(lipgloss.Left, heading.ViewWithContext(ctx), view)
}

// WithHeading sets the text above the table.
func (t *Table) WithHeading(heading string) *Table {
	t.heading = heading
	return t
}

// WithHeadingClassName adds classes to the heading.
func (t *Table) WithHeadingClassName(className string) *Table {
	t.headingClassName = className
	return t
}

// WithClassName adds classes to the table body.
func (t *Table) WithClassName(className string) *Table {
	t.className = className
	return t
}

// Add appends rows.
func (t *Table) Add(children ...ui.Renderable) *Table {
	t.children = append(t.children, children...)
	return t
}

// Rows returns the TableRow children in order.
func (t *Table) Rows() []*TableRow {
	var rows []*TableRow
	for _, child := range t.children {
		if row, ok := child.(*TableRow); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// NewTableHeader creates an uppercase section caption for use inside a table.
func NewTableHeader(text string) *Text {
	return NewText(text).WithVariant("caption1").WithClassName(tableHeaderClasses)
}

// TableRow is a title with an optional description and side elements.
type TableRow struct {
	BaseComponent
	title                string
	description          string
	left                 ui.Renderable
	right                ui.Renderable
	className            string
	titleClassName       string
	descriptionClassName string
	onPress              func()
}

// NewTableRow creates a row.
func NewTableRow(title string) *TableRow {
	return &TableRow{BaseComponent: NewBaseComponent(), title: title}
}

// View renders the row as the last one of its table.
func (r *TableRow) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the row as the last one of its table.
func (r *TableRow) ViewWithContext(ctx RenderContext) string {
	return r.render(ctx, true)
}

func (r *TableRow) render(ctx RenderContext, last bool) string {
	theme := ctx.Theme

	var right string
	if r.right != nil {
		right = render(r.right, ctx)
	} else {
		right = lipgloss.NewStyle().Foreground(theme.MustColor("input")).Render(RowChevron)
	}
	var left string
	if r.left != nil {
		left = render(r.left, ctx) + " "
	}

	lines := []string{
		NewText(r.title).WithVariant("headline").WithClassName(variants.Merge("text-foreground", r.titleClassName)).ViewWithContext(ctx),
	}
	if r.description != "" {
		lines = append(lines, NewText(r.description).WithVariant("subhead").
			WithClassName(variants.Merge("text-muted-foreground", r.descriptionClassName)).ViewWithContext(ctx))
	}

	contentClasses := rowContentClasses
	if !last {
		contentClasses = variants.Merge(contentClasses, "border-b")
	}
	content := ClassStyle(theme, contentClasses)
	if w := ctx.MaxWidth(); w > 0 {
		content = content.Width(maxInt(1, w-lipgloss.Width(left)-lipgloss.Width(right)-1))
	}

	row := Classes(variants.Merge(tableRowClasses, r.className))(r.ComputeStyle(theme), theme)
	return row.Render(lipgloss.JoinHorizontal(lipgloss.Center,
		left,
		content.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)),
		" ",
		right,
	))
}

// WithDescription sets the secondary line.
func (r *TableRow) WithDescription(description string) *TableRow {
	r.description = description
	return r
}

// WithLeft sets an element drawn before the title.
func (r *TableRow) WithLeft(el ui.Renderable) *TableRow {
	r.left = el
	return r
}

// WithRight replaces the chevron with an element.
func (r *TableRow) WithRight(el ui.Renderable) *TableRow {
	r.right = el
	return r
}

// WithClassName adds classes to the row.
func (r *TableRow) WithClassName(className string) *TableRow {
	r.className = className
	return r
}

// WithTitleClassName adds classes to the title.
func (r *TableRow) WithTitleClassName(className string) *TableRow {
	r.titleClassName = className
	return r
}

// WithDescriptionClassName adds classes to the description.
func (r *TableRow) WithDescriptionClassName(className string) *TableRow {
	r.descriptionClassName = className
	return r
}

// WithOnPress sets the callback run by Press.
func (r *TableRow) WithOnPress(fn func()) *TableRow {
	r.onPress = fn
	return r
}

// Press runs the row callback, if any.
func (r *TableRow) Press() {
	if r.onPress != nil {
		r.onPress()
	}
}

// Title returns the row title.
func (r *TableRow) Title() string {
	return r.title
}
