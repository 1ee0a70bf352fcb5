// Package gateway assembles the newsdesk serving stack: the article store,
// the tool registry and dispatcher, the MCP transport, and the static
// manifest/widget assets, all behind a single HTTP server with graceful
// shutdown.
package gateway
