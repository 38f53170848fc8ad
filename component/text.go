package component

// TextComponent is the string payload of a display text owned by the UI collaborator
type TextComponent struct {
	Value string
}
