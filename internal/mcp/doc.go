// Package mcp implements the Model Context Protocol server for the news tools.
//
// # Overview
//
// MCP (Model Context Protocol) is a standard for AI tool integration. This
// package provides an MCP-compatible HTTP server exposing the news tool set
// to external chat clients (ChatGPT apps, Claude Desktop, custom agents).
//
// # Protocol
//
// The server implements the Streamable HTTP transport: JSON-RPC 2.0 over
// HTTP POST to a single endpoint, with session tracking via the
// Mcp-Session-Id header:
//
//   - POST /mcp - initialize, tools/list, tools/call, notifications
//   - DELETE /mcp - session termination
//
// Server-initiated SSE streams are not supported; GET returns 405.
//
// # Authentication
//
// Optional static access keys, configured at startup. A key may be carried
// in the URL path (/mcp/<key>), the ?key= query parameter, or as a Bearer
// token. With no keys configured the endpoint is open.
//
// # Tool Discovery and Execution
//
// Clients call tools/list to discover available tools (JSON Schema per
// tool) and tools/call to execute one:
//
//	{
//	  "jsonrpc": "2.0",
//	  "method": "tools/call",
//	  "params": {
//	    "name": "fetch_news",
//	    "arguments": {"category": "technology", "limit": 5}
//	  },
//	  "id": 2
//	}
//
// Tool failures never surface as JSON-RPC errors: the result carries
// isError with a text content item describing what went wrong, so a failing
// tool call cannot crash or confuse the serving loop.
package mcp
