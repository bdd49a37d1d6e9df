// Command headsum prints a fingerprint of the first mebibyte of each file.
//
// Usage:
//
//	headsum [flags] FILE...
//
// Output follows the md5sum layout ("<digest>  <path>") unless --format asks
// for json or table. A path of "-" reads standard input. Files that share
// their first mebibyte share a fingerprint; deciding what that means is left
// to the caller.
package main
