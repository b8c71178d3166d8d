package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectOptions() []SelectOption {
	return []SelectOption{
		{Label: "Option", Value: "1", GroupLabel: "Numbers"},
		{Label: "Option 2", Value: "2", GroupLabel: "Numbers"},
		{Label: "Other", Value: "x"},
	}
}

func TestNewSelectDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		defaultValue string
		wantValue    string
		wantLabel    string
	}{
		{name: "explicit default", defaultValue: "2", wantValue: "2", wantLabel: "Option 2"},
		{name: "empty falls back to first", defaultValue: "", wantValue: "1", wantLabel: "Option"},
		{name: "unknown shows the raw value", defaultValue: "9", wantValue: "9", wantLabel: "9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewSelect(tt.defaultValue, selectOptions()...)
			assert.Equal(t, tt.wantValue, s.Value())
			assert.Equal(t, tt.wantLabel, s.SelectedLabel())
			assert.Contains(t, plain(s.View()), tt.wantLabel+" "+SelectChevron)
		})
	}
}

func TestSelectPickWithKeys(t *testing.T) {
	t.Parallel()

	var gotValue, gotLabel string
	s := NewSelect("1", selectOptions()...).WithOnSelect(func(v, l string) {
		gotValue, gotLabel = v, l
	})
	s.Focus()

	s, _ = s.Update(press("enter"))
	require.True(t, s.IsOpen())

	s, _ = s.Update(press("down"))
	s, _ = s.Update(press("enter"))
	assert.False(t, s.IsOpen())
	assert.Equal(t, "2", s.Value())
	assert.Equal(t, "2", gotValue)
	assert.Equal(t, "Option 2", gotLabel)

	s, _ = s.Update(press("enter"))
	s, _ = s.Update(press("esc"))
	assert.False(t, s.IsOpen())
	assert.Equal(t, "2", s.Value())
}

func TestSelectSheetView(t *testing.T) {
	t.Parallel()

	s := NewSelect("2", selectOptions()...)
	assert.Empty(t, s.SheetView(DefaultContext()))

	s.Open()
	sheet := plain(s.SheetView(DefaultContext()))
	assert.Contains(t, sheet, defaultSelectHeader)
	assert.Contains(t, sheet, "✓ Option 2")
	assert.Equal(t, 1, countOf(sheet, "Numbers"), "group label is shown once")

	sheet = plain(s.WithLabel("Pick one").SheetView(DefaultContext()))
	assert.Contains(t, sheet, "Pick one")
	assert.NotContains(t, sheet, defaultSelectHeader)
}

func TestSelectSearch(t *testing.T) {
	t.Parallel()

	var queries []string
	s := NewSelect("1", selectOptions()...).WithOnSearch(func(q string) {
		queries = append(queries, q)
	})
	s.Focus()
	s.Open()

	s, _ = s.Update(press("/"))
	s, _ = s.Update(press("o"))
	s, _ = s.Update(press("t"))
	assert.Equal(t, []string{"o", "ot"}, queries)

	s.SetOptions(SelectOption{Label: "Other", Value: "x"})
	s, _ = s.Update(press("enter"))
	s, _ = s.Update(press("enter"))
	assert.Equal(t, "x", s.Value())
	assert.Equal(t, "", queries[len(queries)-1], "closing clears the search")
}

func TestSelectPickUnknown(t *testing.T) {
	t.Parallel()
	s := NewSelect("1", selectOptions()...)
	assert.False(t, s.Pick("nope"))
	assert.Equal(t, "1", s.Value())
}
