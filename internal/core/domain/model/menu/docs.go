// Package menu implements the Menu aggregate: a priced collection of product
// lines whose price can never exceed the sum of its line subtotals. The
// invariant is enforced at creation, on every price change, and again when the
// menu is put on display, because the referenced product prices may have moved
// in between.
package menu
