// Package cloud renders ranked words as a self-contained HTML tag cloud.
//
// Every render shuffles its input and draws an orientation and a color per
// word from the Renderer's random source, so two renders of the same words
// differ unless the source is seeded identically. Font size is the word count
// times the configured scale and is never clamped.
//
// Word text is written into the markup without HTML escaping. That is only
// safe because wordfreq emits letters, apostrophes and ASCII word characters;
// escaping must be added here if tokenization ever admits '<' or '&'.
package cloud
