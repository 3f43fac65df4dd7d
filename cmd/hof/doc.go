// Command hof replays the higher-order function examples from the command line.
//
// Usage:
//
//	hof compare --gt 10 5 11 100
//	hof compare --gt 0 -- -5 5
//	hof compare --where gt100 99 101
//	hof scale --by 3 1 2 3
//	hof scale --by 3 -- 1 2 -3
//	hof scale --fn quadruple 1 2 3
//	hof animals --file animals.yaml [--species dog] [--reject]
//	hof animals --file animals.yaml --where is-fish
//	hof when --value 11 --gt 10 --say hey
//	hof demo
//
// compare and scale stop reading flags at the first value, so flags go
// first and -- separates them from values that start with a minus sign.
//
// Defaults come from the environment (HOF_LOG_LEVEL, HOF_SPECIES,
// HOF_THRESHOLD, HOF_FACTOR) and are overridden by flags. Logs are JSON on
// stderr via zap; results go to stdout.
package main
