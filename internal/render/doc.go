// Package render draws solved u fields as 3D surfaces.
//
// Two targets are supported:
//
//   - [Surface]: raster images of the filled surface, painted back to front
//     and colored through a plasma [Colormap]. A [Recorder] turns a stream of
//     frames into an animated GIF or an MJPEG AVI.
//   - [Canvas]: a Braille character canvas for terminals, drawn as a
//     wireframe by [DrawWireframe].
//
// Both share the orthographic [Camera], positioned by elevation and azimuth
// in degrees with the same conventions as a matplotlib 3D axis.
package render
