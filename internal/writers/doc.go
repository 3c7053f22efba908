// Package writers turns a finished pipeline result into a match report.
//
// Design:
//   • Writers own all presentation knowledge (TSV, JSON).
//   • Pipeline stays orchestration-only; render owns the image.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
