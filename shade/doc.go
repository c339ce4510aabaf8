// Package shade maps terrain cells to colours and draws a terrain in a
// terminal.
//
// Palette:
//
//   - Ocean cells are solid blue.
//   - Flooded land runs from teal (just under) to deep blue (far under).
//   - Dry land at or below the water line runs from olive to red the
//     deeper it sits: it will go under as soon as the water reaches it.
//   - Dry land above the water runs from green to white with altitude.
//
// Colours are github.com/gookit/color RGB values; Render prints them as
// background blocks, or as plain ASCII glyphs when colour is off.
package shade
