// Package textutil provides small text helpers shared by the export and CLI
// layers: filesystem-safe file names, Excel-safe sheet identifiers, and a
// generic conditional.
package textutil
