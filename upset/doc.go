// Package upset models the data behind an UpSet plot: sets of elements,
// combinations derived from them, queries highlighting either, and the font
// sizes of the chart. Entities are immutable once built; a Chart owns the
// catalog they are resolved against.
package upset
