// Package deps checks availability of the external binaries chatrelay
// shells out to.
package deps
