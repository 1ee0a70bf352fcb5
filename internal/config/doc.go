// Package config loads the newsdesk YAML configuration.
//
// Configuration is read once at startup. Values in the form ${VAR_NAME}
// are expanded from the environment before parsing, so secrets like the
// MongoDB URI can live in the environment:
//
//	server:
//	  http_addr: ":3000"
//	mongodb:
//	  uri: ${MONGODB_URI}
//	  database: news_db
//	  collection: articles
//	  query_timeout: 10s
//	mcp:
//	  access_keys:
//	    - ${NEWSDESK_ACCESS_KEY}
//	logging:
//	  level: info
//	  format: text
//
// Load applies defaults for the HTTP address, database and collection
// names, then validates; only mongodb.uri is strictly required.
package config
