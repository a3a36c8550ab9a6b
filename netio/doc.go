// Package netio reads flow networks in the whitespace-separated text format
// used by the preflow command and writes networks and results back out.
//
// Read accepts "n m c p" followed by m triples "u v capacity"; c and p are
// ignored. WriteSpec emits the same format and WriteFlow the result line
// "f = <value>".
package netio
