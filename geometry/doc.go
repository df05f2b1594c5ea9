// SPDX-License-Identifier: MIT

// Package geometry provides the plane primitives the chaos game runs on:
// points, regular polygons with unit edge length, and a point-in-polygon
// test used to seed the first point of a run.
//
// Conventions:
//
//   - Vertex i of a regular polygon sits at angle i·2π/n measured from the
//     positive Y axis: (sin·R, cos·R). The order is fixed; containment and
//     vertex lookups depend on it.
//   - A Polygon is stored as an open ring. Closed() appends the first vertex
//     for consumers that want an explicit boundary.
//   - Coordinates of generated vertices are rounded to Precision decimals.
//
// Usage:
//
//	poly, err := geometry.Regular(5) // unit-side pentagon
//	if err != nil { ... }
//	inside := poly.Contains(geometry.Pt(0.1, 0.2))
package geometry
