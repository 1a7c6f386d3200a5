// Package bench runs coloring strategies over batches of DIMACS instances
// and the isomorphism filter over matrix pair files.
//
// A Runner loads each instance, runs every configured strategy Repeat
// times, summarises wall-clock timings and optionally checks properness
// with coloring.Verify and persists a store.Record per strategy. Errors are
// kept per instance: a missing or malformed file yields a Report with Err
// set and the batch moves on to the next path.
package bench
