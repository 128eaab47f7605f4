package domain

// ChangeTracker records which aggregate fields have been modified so the
// repository can build UPDATE mutations touching only changed columns.
type ChangeTracker struct {
	dirtyFields map[string]bool
}

// NewChangeTracker creates an empty tracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirtyFields: make(map[string]bool),
	}
}

// MarkDirty marks a field as modified.
func (ct *ChangeTracker) MarkDirty(field string) {
	ct.dirtyFields[field] = true
}

// Dirty checks if a specific field has been marked dirty.
func (ct *ChangeTracker) Dirty(field string) bool {
	return ct.dirtyFields[field]
}

// HasChanges returns true if any fields have been marked dirty.
func (ct *ChangeTracker) HasChanges() bool {
	return len(ct.dirtyFields) > 0
}

// Clear removes all dirty field markers.
func (ct *ChangeTracker) Clear() {
	ct.dirtyFields = make(map[string]bool)
}
