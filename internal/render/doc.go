// Package render converts pixel rasters into frames of glyphs.
//
// A Strategy, built from a validated Config, decides which pixels are sampled
// and what each sample becomes:
//
//   - ModeBlock: luma quantized against the 5-glyph shading palette
//   - ModeBraille: a 2×4 pixel block packed into one braille character
//   - ModeColorBlock: a solid block glyph carrying the pixel's literal color
//   - ModeColorHTML: every pixel, unthrottled, as colored glyph pairs
//
// # Sampling
//
// A SampleSpec combines the compression stride c with the footprint (cw, ch)
// of one glyph in source pixels. Sample origins sit on multiples of c·cw and
// c·ch, and a cell is only emitted if its whole footprint stays inside the
// image. Trailing rows and columns that cannot fill a cell are dropped, never
// clipped, so a Frame's shape depends only on the SampleSpec and the image
// size.
//
// # Frames
//
// A Frame is an ordered list of Lines, each an ordered list of Cells. Lines of
// glyph-only modes have their trailing whitespace cells trimmed; colored lines
// are kept intact.
//
// Palettes and the braille dot table are package-level values that are never
// mutated, so Strategies and Renderers are safe to share.
package render
