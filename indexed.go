/*
Package indexed implements a small model for indexed colour bitmap graphics.

A Palette is an ordered, fixed table of Color values. Looking up an index
that is outside the table never fails; the palette's default colour, which
is always fully zero, is returned instead so pixel values decoded from
untrusted data can be resolved without checking them first.

A Frame describes a rectangular region of a larger image such as a cell
of a sprite sheet.
*/
package indexed
