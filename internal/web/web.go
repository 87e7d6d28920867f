// Package web carries the static pages served next to the JSON API: the
// admin dashboard and the public ticket-lookup form. Both are plain HTML
// driving the /api endpoints from the browser.
package web

import _ "embed"

//go:embed templates/admin.html
var AdminPage []byte

//go:embed templates/ticket.html
var TicketPage []byte
