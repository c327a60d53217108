// Package model contains the demonstration value holder.
package model

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// DefaultName is the name held by an Example built without one.
const DefaultName = "default"

// Example is a name-holding record. It is a plain value: assignment copies it,
// Move transfers it.
type Example struct {
	id   string
	name string
}

// exampleJSON is the wire shape of Example.
type exampleJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewExample creates an Example holding name.
func NewExample(name string) Example {
	return Example{id: uuid.NewString(), name: name}
}

// DefaultExample creates an Example holding DefaultName.
func DefaultExample() Example {
	return NewExample(DefaultName)
}

// Clone returns a copy of e. The copy shares the ID because it is the same value.
func (e Example) Clone() Example {
	return e
}

// Move transfers the contents of src into a new value and leaves src empty.
func Move(src *Example) Example {
	dst := *src
	*src = Example{}
	return dst
}

// ID returns the identifier assigned at construction.
func (e Example) ID() string {
	return e.id
}

// Name returns the held name.
func (e Example) Name() string {
	return e.name
}

// SetName replaces the held name.
func (e *Example) SetName(name string) {
	e.name = name
}

// Print writes "Example: <name>".
func (e Example) Print(w io.Writer) {
	fmt.Fprintf(w, "Example: %s\n", e.name)
}

// MarshalJSON implements json.Marshaler.
func (e Example) MarshalJSON() ([]byte, error) {
	return json.Marshal(exampleJSON{ID: e.id, Name: e.name})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Example) UnmarshalJSON(data []byte) error {
	var v exampleJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode example: %w", err)
	}
	e.id, e.name = v.ID, v.Name
	return nil
}
