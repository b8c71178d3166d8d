// Package components provides a theme-aware component kit for terminal
// applications, built on lipgloss and bubbletea.
//
// # Overview
//
// Components are styled with utility classes. Each component keeps a
// variants table that maps its options to classes, and callers can pass
// extra classes that win over the component's own:
//
//	NewButton("Delete").
//		WithVariant("destructive").
//		WithSize("sm").
//		WithClassName("px-8")
//
// Classes resolve to a lipgloss style against a Theme. Spacing and sizes are
// converted to cells: one column is two spacing units and one row is eight.
// Classes with no terminal meaning (flex, shadow, cursor-pointer) are
// ignored.
//
// # Theme
//
// Themes are immutable and passed through RenderContext. DefaultTheme adapts
// to the terminal background; ThemeForScheme pins light or dark, which also
// enables "dark:" classes.
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	output := component.ViewWithContext(ctx)
//
// Colour tokens (primary, muted-foreground, border, ...) come from the
// generated tokens package; run `uikit sync-colors` after editing the
// stylesheet.
//
// # Components
//
// Stateless components render from their options alone:
//   - Text, Badge, Button, Divider
//   - Card, CardHeader, CardTitle, CardDescription, CardContent, CardFooter
//   - Table, TableHeader, TableRow
//   - Stack, Container, ScreenLayout
//
// Interactive components are bubbletea sub-models. They handle keys only
// while focused and return the updated value from Update:
//   - Input, RadioGroup, Select, Tabs, Accordion, Collapse
//   - PopoverMenu, Modal, ConfirmDialog, ScreenScrollView
//
// Popover menus, modal sheets and select sheets are drawn apart from their
// trigger (MenuView, SheetView) so the host can place them with Overlay.
//
// # Style overrides
//
// Every component still accepts a raw lipgloss style or theme-aware
// StyleFuncs, applied under the resolved classes:
//
//	NewText("Status").WithAppliers(Foreground("success"), Padding(0, 1))
package components
