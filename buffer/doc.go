// Package buffer implements the row-oriented document model of the editor.
//
// Every Row keeps its raw characters, a tab-expanded render form and one
// highlight tag per rendered character. Positions are 0-based (X, Y) with X
// indexing raw characters of row Y. Render columns index the render form.
package buffer
