// Package migrate rewrites legacy map syntax into its canonical form.
//
// Each Strategy handles one legacy construct and touches only the lines that
// match it; every other byte of the document, line terminators included, is
// passed through. Strategies are idempotent: applying one to its own output
// reports no change. Migrations chains the strategies in a fixed order.
package migrate
