// Package events defines the lifecycle events dispatched while saving and
// deleting fieldsets and terms. Events are observational; only the saving
// events can be halted by a listener.
package events

// Name identifies a lifecycle event, e.g. "term.saved".
type Name string

// Fieldset lifecycle events.
const (
	FieldsetSaving  Name = "fieldset.saving"
	FieldsetCreated Name = "fieldset.created"
	FieldsetSaved   Name = "fieldset.saved"
	FieldsetDeleted Name = "fieldset.deleted"
)

// Term lifecycle events.
const (
	TermSaving  Name = "term.saving"
	TermCreated Name = "term.created"
	TermSaved   Name = "term.saved"
	TermDeleted Name = "term.deleted"
)

// String implements fmt.Stringer.
func (n Name) String() string { return string(n) }

// Cancellable reports whether listeners may halt the event.
func (n Name) Cancellable() bool {
	switch n {
	case FieldsetSaving, TermSaving:
		return true
	default:
		return false
	}
}

// Set groups the four lifecycle event names of one entity kind.
type Set struct {
	Kind    string
	Saving  Name
	Created Name
	Saved   Name
	Deleted Name
}

// Fieldsets is the event set dispatched for fieldsets and blueprints.
var Fieldsets = Set{
	Kind:    "fieldset",
	Saving:  FieldsetSaving,
	Created: FieldsetCreated,
	Saved:   FieldsetSaved,
	Deleted: FieldsetDeleted,
}

// Terms is the event set dispatched for taxonomy terms.
var Terms = Set{
	Kind:    "term",
	Saving:  TermSaving,
	Created: TermCreated,
	Saved:   TermSaved,
	Deleted: TermDeleted,
}

// Event is a dispatched lifecycle event carrying the entity involved.
type Event struct {
	Name   Name
	Entity any
}

// New creates an Event.
func New(name Name, entity any) Event {
	return Event{Name: name, Entity: entity}
}
