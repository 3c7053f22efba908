// Package pipeline runs the input side of a diagram: motifs, colors, FASTA
// records, exons, matches and layout. It never draws and never touches the
// output file, so every input error surfaces before a surface exists.
package pipeline
