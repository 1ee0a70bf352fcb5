// Package seed provides the sample article set and the seeding flow used
// by the newsdesk seed command and the in-memory development store.
package seed
