// Package web embeds the browser client: a single-page workspace the API
// serves from the binary, mirroring how the portal ships as one process.
package web

import "embed"

//go:embed static
var Static embed.FS
