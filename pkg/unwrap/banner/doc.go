// Package banner renders the diagnostic box printed when an unwrap fails,
// then terminates the process that asked for it.
//
// Composition and termination are kept apart:
// - Compose: pure text assembly, byte-identical output for identical requests
// - Renderer.Abort: a single write to the configured sink, then panic
//
// The default renderer writes to os.Stderr and panics with the banner header
// as the reason. Tests swap it out with ReplaceDefault to capture banners
// without dying.
package banner
