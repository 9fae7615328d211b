// Package imaging provides the raster operations behind the tile scanner.
//
// This package loads the source image as 8-bit grayscale, enumerates the
// overlapping sliding-window positions, extracts independent tile buffers,
// runs Canny edge detection, and renders accepted tiles to disk. All
// operations work with standard Go image types and use a coordinate system
// where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, Min is inclusive (top-left), Max is exclusive (bottom-right)
//
// # Thread Safety
//
// Every function is stateless. ExtractTile returns a buffer that shares no
// memory with its source, so tiles can be analysed and rendered from
// separate goroutines while the source image is only read. Renderer is safe
// for concurrent use as long as each call targets a different Window.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Tile regions outside image bounds
//   - Images not larger than the tile size (ErrImageTooSmall)
//   - Input paths that are missing or not regular files (ErrNotRegularFile)
//   - Decoding errors during loading and encoding errors during saving
package imaging
