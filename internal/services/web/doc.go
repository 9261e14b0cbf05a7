// Package web serves the debt renegotiation form and the results table.
//
// The root handler composes the cadastro and resultados modules over one slot
// store, adds static assets and a health probe, and wraps everything in the
// shared middleware chain.
package web
