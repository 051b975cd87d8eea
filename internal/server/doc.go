// Package server implements an MCP (Model Context Protocol) server exposing
// the mosaic generator as tools.
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
//   - image_dimensions: width and height of a photograph
//   - mosaic_plan_grid: brick grid geometry for an output size
//   - mosaic_analyze_colors: colour statistics of a prepared photograph,
//     including the signal colour
//   - mosaic_generate: build an illustration and export it to a file
//
// Omitted arguments fall back to the config.Config the server was created
// with.
//
// # Error Handling
//
// Errors are returned as JSON-RPC error responses:
//   - -32601: Method not found
//   - -32602: Invalid params (malformed JSON)
//   - -32000: Tool execution failed (invalid width, missing file, etc.)
//
// # Logging
//
// Logs go to stderr through logrus, since stdout carries the protocol.
package server
