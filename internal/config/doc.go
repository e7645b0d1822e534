// Package config turns command-line options into a validated conversion
// plan.
//
// All option conflicts are detected here, before any image is opened, and
// fail with render.ErrUnsupportedConfiguration:
//   - both or neither of block and braille shading
//   - both html and text output
//   - colored output with braille shading or text files
//   - whitespace with block shading
//
// # Mode Table
//
// A valid combination of shading, output format and color selects the
// rendering mode and its defaults:
//
//	shading  format    colored  mode         compression  repeat  swap
//	block    html      no       block        1            2       no
//	block    html      yes      color_html   -            -       no
//	block    text      no       block        1            2       no
//	block    terminal  no       block        auto         3       yes
//	block    terminal  yes      color_block  auto         3       no
//	braille  html      -        braille      2            -       no
//	braille  text      -        braille      1            -       no
//	braille  terminal  -        braille      auto         -       yes
//
// Automatic compression is the smallest stride that keeps the first image's
// sampled width below 67 pixels (block) or 400 pixels (braille), lowered
// further so a line fits the attached terminal. Explicit --compression and
// --repeat values override the table.
package config
