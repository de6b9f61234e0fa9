package table

// Selection is the list of selected row ids. It is owned by the caller.
type Selection []string

// Contains reports whether id is selected
func (s Selection) Contains(id string) bool {
	for _, selected := range s {
		if selected == id {
			return true
		}
	}
	return false
}

// Toggle selects id, or deselects it when it is already selected
func (s Selection) Toggle(id string) Selection {
	if s.Contains(id) {
		return s.without(map[string]bool{id: true})
	}
	return append(append(Selection(nil), s...), id)
}

// AllSelected reports whether every loaded row is selected
func (s Selection) AllSelected(loaded []string) bool {
	if len(loaded) == 0 {
		return false
	}
	for _, id := range loaded {
		if !s.Contains(id) {
			return false
		}
	}
	return true
}

// ToggleAll selects every loaded row, or deselects them all when they are all selected already.
// Ids that are not loaded are left untouched.
func (s Selection) ToggleAll(loaded []string) Selection {
	if s.AllSelected(loaded) {
		remove := make(map[string]bool, len(loaded))
		for _, id := range loaded {
			remove[id] = true
		}
		return s.without(remove)
	}

	selection := append(Selection(nil), s...)
	for _, id := range loaded {
		if !selection.Contains(id) {
			selection = append(selection, id)
		}
	}
	return selection
}

// Retain drops every id that is not a loaded row
func (s Selection) Retain(loaded []string) Selection {
	keep := make(map[string]bool, len(loaded))
	for _, id := range loaded {
		keep[id] = true
	}

	selection := Selection{}
	for _, id := range s {
		if keep[id] && !selection.Contains(id) {
			selection = append(selection, id)
		}
	}
	return selection
}

func (s Selection) without(remove map[string]bool) Selection {
	selection := Selection{}
	for _, id := range s {
		if !remove[id] {
			selection = append(selection, id)
		}
	}
	return selection
}
