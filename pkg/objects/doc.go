// Package objects provides built-in renderable values.
//
// These types exercise every dispatch path the display package offers:
//
//   - Gaussian: an expensive image producer that memoizes its PNG for the
//     object's lifetime, so repeated renders are bit-identical and the
//     computation runs once.
//   - Circle: a cheap value with HTML, Markdown, LaTeX, and JSON intrinsics.
//   - Graph: a node/edge value whose SVG and PNG intrinsics render DOT
//     through Graphviz.
//   - Banner: a full-control Displayer that publishes its own
//     representations and suppresses per-kind dispatch.
//
// The CLI and the HTTP API construct these by name; libraries embedding
// Vitrine use them as reference implementations for their own types.
package objects
