// Package sink writes rendered frames to their destinations.
//
// Text and HTML sinks produce one file per frame, named after the source
// image with its extension replaced and placed in an output directory. Either
// can compress its artifact with zstd. The Terminal sink writes directly to a
// stream and styles colored cells with 24-bit ANSI colors.
//
// Every failure to create or write a destination wraps ErrIOWrite.
package sink
