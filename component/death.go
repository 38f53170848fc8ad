package component

// DeathComponent tags an entity for removal at the end of the frame
// Once present, systems skip further gameplay effects on the entity
type DeathComponent struct{}
