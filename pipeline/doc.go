// Package pipeline runs a conversion: it validates the requested paths,
// mirrors the input directory tree, enumerates image files, and converts
// them on a bounded worker pool, collecting a run summary.
//
// Single-file runs are synchronous. Directory runs fan tasks out to
// Options.Workers goroutines (the core count by default). Tasks share only
// read-only settings and a concurrency-safe size cache; their output paths
// are disjoint, so no locking is needed around image work.
//
// By default the first failed task cancels the rest of the batch and its
// error is returned. With Options.KeepGoing every task runs and all errors
// are returned together.
package pipeline
