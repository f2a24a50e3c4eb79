// Package pipeline runs the per-record translation pass over assembled
// genomes, fanning out across records while keeping their order.
//
// Resolution happens before this stage and is single-threaded; only
// translation, which touches one record at a time, runs in parallel.
package pipeline
