// Package cadastro serves the customer form and installment calculator.
//
// Each request rebuilds a Controller from the stored submission log. GET
// renders an empty draft, POST replays the posted fields and submits, and the
// phone endpoint returns the masked phone field for live typing.
package cadastro
