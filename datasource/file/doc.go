// Package file provides a DataSource which reads data from files on disk, matched by a glob.
// Each file is loaded by its own PageLoader.
package file
