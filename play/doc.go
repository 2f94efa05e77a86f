// Package play drives a tetris.Game frame by frame. A Session collects
// intents from whatever input device the caller uses, and the systems
// registered by Install turn them into kernel calls, run gravity with
// animated descents and pace spawns around line clears.
package play
