// Package server implements an MCP (Model Context Protocol) server that
// renders images as text.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//   - ascii_geometry: Rows, columns and display width a mode would produce
//   - ascii_render: Render an image as block, braille or colored glyphs,
//     returned as text or HTML
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process, so
// repeated geometry and render calls on one file decode it once.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (malformed params) or
//     -32601 (unknown method)
//   - message: Human-readable error description
//   - data: "<kind>: <cause>", where kind is one of ImageDecodeError,
//     IOWriteError, InvalidSampleGeometry or UnsupportedConfiguration
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
