// Package devserver runs the local development server: it proxies the SRD
// API prefix to the remote origin, rejects requests for unknown hosts, and
// serves the categories component, rendered records and the stylesheet.
package devserver
