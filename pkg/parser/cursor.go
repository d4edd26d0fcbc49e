/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package parser

// cursor makes a token vector available as a stream. One cursor is shared
// by every recursive command level of a parse, so a token consumed at one
// level is never re-seen by a parent or sibling level.
type cursor struct {
	tokens []string
	pos    int
}

func newCursor(tokens []string) *cursor {
	return &cursor{tokens: tokens}
}

// hasNext reports whether at least one unconsumed token remains.
func (c *cursor) hasNext() bool {
	return c.pos < len(c.tokens)
}

// next consumes and returns the next token.
func (c *cursor) next() string {
	c.pos++
	return c.tokens[c.pos-1]
}

// peek returns the next token without consuming it.
func (c *cursor) peek() string {
	return c.tokens[c.pos]
}

// drain consumes and returns every remaining token.
func (c *cursor) drain() []string {
	rest := c.tokens[c.pos:]
	c.pos = len(c.tokens)
	return rest
}
