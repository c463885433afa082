// Package benchtest is used for benchmarking the dataobject String value
// object against the Go stdlib's strings package.
//
// It is not part of the dataobject package since the benchmarks only
// measure the overhead of the value object and its case folding compared
// to the stdlib.
package benchtest
