// Package config loads the gridpath YAML configuration.
//
// Defaults:
//
//	engine:   {algorithm: astar, diagonal: false, rsr: false, min_side: 4}
//	schedule: {time_budget: 16ms, step_delay: 0s}
//	log:      {level: info, format: text}
//	server:   {addr: ":8080", read_timeout: 10s, write_timeout: 30s, max_cells: 1000000}
//
// Load starts from Default and overlays the file, so a file only lists what
// it changes. Unknown keys are rejected. EngineConfig converts the engine
// section for engine.Configure and NewLogger builds the logrus logger.
package config
