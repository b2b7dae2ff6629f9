// Package formats parses the asset file formats read by the client.
package formats
