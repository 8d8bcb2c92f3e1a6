package model

// Identity is the assistant's process-wide identity. It is built once at startup and only read afterwards.
type Identity struct {
	Name     string
	FullName string // acronym expansion of Name
	Version  string
	Active   bool
}
