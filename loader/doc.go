// Package loader parses the plain-text graph descriptions accepted by the
// pathfinder tools into core graphs.
//
// Three forms are understood. All are whitespace-delimited; line breaks only
// matter for error messages. A token starting with '#' begins a comment that
// runs to end of line; a '#' inside a token is part of it, so "node#1" is a
// valid label.
//
// Indexed (road maps with numbered locations, directed):
//
//	V E
//	u v w      (E times, 0 <= u, v < V)
//	[source]
//
// Labeled (social networks with named users, undirected):
//
//	numVertices numEdges
//	a b w      (numEdges times)
//	[source]
//
// Cities (named cities declared upfront, directed):
//
//	numCities
//	name       (numCities times)
//	numRoads
//	from to w  (numRoads times, both cities declared)
//	start
//
// Graph options passed by the caller are applied after the defaults of the
// form, so core.WithDirected can flip the orientation of any form.
//
// Every syntax error wraps ErrSyntax and names the offending line. Errors from
// the graph itself (core.ErrVertexNotFound, core.ErrInvalidWeight) are wrapped
// with the line of the edge that caused them.
package loader
