package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Selection_Toggle(t *testing.T) {
	selection := Selection{"1"}

	selection = selection.Toggle("2")
	assert.Equal(t, Selection{"1", "2"}, selection)

	selection = selection.Toggle("1")
	assert.Equal(t, Selection{"2"}, selection)
}

func Test_Selection_Toggle__should_not_modify_receiver(t *testing.T) {
	original := make(Selection, 1, 4)
	original[0] = "1"

	_ = original.Toggle("2")
	_ = original.Toggle("1")

	assert.Equal(t, Selection{"1"}, original)
}

func Test_Selection_ToggleAll__should_select_exactly_the_loaded_rows(t *testing.T) {
	loaded := []string{"21", "22", "23"}

	selection := Selection{}.ToggleAll(loaded)

	assert.Equal(t, Selection{"21", "22", "23"}, selection)
}

func Test_Selection_ToggleAll__should_keep_selection_from_other_pages(t *testing.T) {
	loaded := []string{"21", "22"}

	selection := Selection{"5", "21"}.ToggleAll(loaded)
	assert.Equal(t, Selection{"5", "21", "22"}, selection)

	selection = selection.ToggleAll(loaded)
	assert.Equal(t, Selection{"5"}, selection)
}

func Test_Selection_AllSelected(t *testing.T) {
	assert.True(t, Selection{"1", "2"}.AllSelected([]string{"2", "1"}))
	assert.False(t, Selection{"1"}.AllSelected([]string{"1", "2"}))
	assert.False(t, Selection{"1"}.AllSelected(nil))
}

func Test_Selection_Retain__should_keep_only_loaded_ids(t *testing.T) {
	selection := Selection{"1", "9", "2", "2"}.Retain([]string{"1", "2", "3"})

	assert.Equal(t, Selection{"1", "2"}, selection)
}
