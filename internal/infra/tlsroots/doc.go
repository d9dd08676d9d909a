// Package tlsroots builds the TLS client configuration used by connections.
//
// The system certificate pool is always trusted; an optional PEM bundle
// (http.ca_file) adds private CAs, e.g. for a proxy in front of the API.
package tlsroots
