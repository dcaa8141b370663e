// Package generated holds code emitted by the brzozowski command, used by
// the benchmarks.
package generated

//go:generate go run ../../cmd/brzozowski -pattern (ba*n*(a*n)b*a) -name Banana -package generated -output banana.go
