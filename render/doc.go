// Package render rasterizes a delaunay.Delaunay triangulation and its
// dual voronoi.Voronoi diagram to a PNG using github.com/fogleman/gg,
// standing in for the reference application's imageproc-based renderer.
//
// Draw order mirrors the reference drawable.rs/to_image.rs: Delaunay
// faces are filled first (alternating cyan/magenta by face parity, so
// adjacent triangles are visually distinguishable), then Delaunay edges
// (light gray), then Voronoi edges (black for finite-to-finite, red rays
// for finite-to-unbounded), then Delaunay vertices (small black dots).
// Voronoi faces are never filled — the reference leaves them transparent
// too, since a Voronoi cell's boundary is generally unbounded.
package render
