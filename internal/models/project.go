package models

// Project is a named unit of work tracked by taskman.
type Project struct {
	// ID is the opaque unique identifier. It is generated once at creation
	// and never changes afterwards.
	ID string `json:"id"`

	// Name is the display name. The form layer flags an empty name as
	// invalid, but the store itself accepts any value.
	Name string `json:"name"`

	// Description is optional free text.
	Description string `json:"description"`
}

// NewProject creates a new Project instance.
func NewProject(id, name, description string) Project {
	return Project{
		ID:          id,
		Name:        name,
		Description: description,
	}
}
