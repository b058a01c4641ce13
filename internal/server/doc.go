// Package server implements the MCP (Model Context Protocol) server for the
// floor plan vectorization engine.
//
// This package provides a JSON-RPC 2.0 server that exposes the
// stroke-to-graph engine through the MCP protocol, so MCP-compatible clients
// (drawing surfaces, AI assistants) can turn raw sketch strokes into
// structured wall graphs.
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
// Vectorization:
//   - plan_vectorize: Full strokes-to-plan pipeline
//   - plan_simplify_stroke: Reduce one stroke to significant vertices
//   - plan_build_graph: Raw wall graph before rectification (diagnostic)
//   - plan_scale: Rescale an exported payload by one measured dimension
//
// Stroke classification:
//   - sketch_classify_strokes: Resolve wall/door/dimension roles from colors
//
// Snapshot operations:
//   - sketch_load: Load a canvas snapshot image and get metadata
//   - sketch_read_dimension: OCR a dimension annotation from a region
//
// # Snapshot Caching
//
// The server maintains an in-memory cache of loaded snapshot images, keyed
// by path and reused across tool calls for the lifetime of the process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// The engine itself degrades on malformed sketch data instead of erroring;
// tool errors come from broken arguments or unreadable snapshot files.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
