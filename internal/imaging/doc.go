// Package imaging turns image files into the pixel grids consumed by the
// glyph renderer.
//
// It covers everything that happens before sampling: decoding, an optional
// preprocessing pass, and flattening the result into an immutable Raster.
//
// # Decoding
//
// Files are decoded with github.com/disintegration/imaging so that JPEG EXIF
// orientation is honoured. PNG, JPEG and GIF decoders come from the standard
// library; BMP, TIFF and WebP are registered from golang.org/x/image. Any
// failure to open or decode a file wraps ErrImageDecode.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner:
//   - X increases rightward
//   - Y increases downward
//   - For regions, (x1,y1) is inclusive and (x2,y2) is exclusive
//
// # Alpha
//
// Rasters carry RGB only. Pixels are read through the non-premultiplied
// NRGBA model and the alpha channel is discarded, so a translucent pixel keeps
// its stored color.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Raster values are never mutated after
// NewRaster returns and may be shared freely.
package imaging
