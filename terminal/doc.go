// Package terminal is the tcell front-end: keyboard intent for the input system and a glyph renderer for the world.
package terminal
