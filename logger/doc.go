// Package logger provides structured logging for speechkit built on zerolog.
//
// A single global logger is initialized from config at startup; components
// obtain tagged child loggers via Get or WithComponent. The merge core in
// package transcript takes no logger at all; progress narration belongs to
// the pipeline, not the algorithm.
//
// # Usage
//
//	logger.Init(cfg.Logging)
//	log := logger.Get("pipeline")
//	log.Info("stage complete", logger.Fields("stage", "diarization"))
package logger
