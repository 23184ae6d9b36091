/*
Package jsx reads and rewrites the class attribute of JSX elements in
JSX/TSX source text without disturbing any other byte of the file.

Elements are addressed by tag name and a zero-based ordinal among
occurrences of that tag in document order. Each call parses the source
from scratch, applies at most one read or write, and discards the tree;
nothing is cached between calls.

Read example:

	value, found, err := jsx.GetClassExpression(ctx, src, "Button", 0)
	if err != nil {
		// source does not parse
	}
	if !found {
		// tag missing, ordinal out of range, or no class attribute
	}

Write example:

	out, err := jsx.UpdateClass(ctx, src, "Button", "isActive ? 'bg-green-500' : 'bg-red-500'", 0)
	if err != nil {
		// source does not parse
	}
	// out == src when the tag was not found
*/
package jsx
