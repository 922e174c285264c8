// Package logging provides logging utilities for skillseed.
//
// Diagnostics go through a single charmbracelet/log logger configured once by
// the root command:
//
//	logging.Setup(verbose, jsonOutput, os.Stderr)
//	logging.Debug("classified skill", "code", code, "tracks", tracks)
//	logging.Info("loaded skills", "file", path, "count", n)
//
// Setup chooses the level (debug when verbose, info otherwise) and the
// formatter (JSON or human-readable text). The summary report is not a log
// and is printed by package report on stdout.
package logging
