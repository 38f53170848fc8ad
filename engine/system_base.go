package engine

import "go.uber.org/zap"

// System is one stage of the frame pipeline
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component *ComponentStore
	Log       *zap.Logger
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World, name string) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  &w.Resource,
		Component: &w.Components,
		Log:       w.Log.Named(name),
	}
}
