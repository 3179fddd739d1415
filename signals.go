package censor

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for engine events.
var (
	SignalProcessorCreated = capitan.NewSignal("censor.processor.created", "Processor instantiated")
	SignalConfigRejected   = capitan.NewSignal("censor.config.rejected", "Processor configuration rejected")
	SignalConfigLoaded     = capitan.NewSignal("censor.config.loaded", "Processor configuration in effect")
	SignalProcessComplete  = capitan.NewSignal("censor.process.complete", "Process operation finished")
	SignalCycleDetected    = capitan.NewSignal("censor.cycle.detected", "Reference cycle cut during traversal")
	SignalDepthExceeded    = capitan.NewSignal("censor.depth.exceeded", "Traversal cut at the depth limit")
)

// Keys for typed event data.
var (
	KeyFormat       = capitan.NewStringKey("format")
	KeyTypeName     = capitan.NewStringKey("type_name")
	KeyConfig       = capitan.NewStringKey("config")
	KeyPatternCount = capitan.NewIntKey("pattern_count")
	KeyHandlerCount = capitan.NewIntKey("handler_count")
	KeyDuration     = capitan.NewDurationKey("duration")
	KeyMaskedCount  = capitan.NewIntKey("masked_count")
	KeyCycleCount   = capitan.NewIntKey("cycle_count")
	KeyMaxDepth     = capitan.NewIntKey("max_depth")
	KeyError        = capitan.NewErrorKey("error")
)

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, format Format, patterns, handlers int) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyFormat.Field(string(format)),
		KeyPatternCount.Field(patterns),
		KeyHandlerCount.Field(handlers),
	)
}

// emitConfigRejected emits an error event when New fails.
func emitConfigRejected(ctx context.Context, err error) {
	capitan.Error(ctx, SignalConfigRejected,
		KeyError.Field(err),
	)
}

// emitConfigLoaded emits the rendered configuration.
func emitConfigLoaded(ctx context.Context, cfg Config) {
	capitan.Emit(ctx, SignalConfigLoaded,
		KeyFormat.Field(string(cfg.General.OutputFormat)),
		KeyConfig.Field(cfg.String()),
	)
}

// emitProcessComplete emits an event when a traversal finishes.
func emitProcessComplete(ctx context.Context, typeName string, duration time.Duration, masked, cycles int) {
	capitan.Emit(ctx, SignalProcessComplete,
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyMaskedCount.Field(masked),
		KeyCycleCount.Field(cycles),
	)
}

// emitCycleDetected emits one event per cut reference.
func emitCycleDetected(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalCycleDetected,
		KeyTypeName.Field(typeName),
	)
}

// emitDepthExceeded emits an event when the depth limit cut a subtree.
func emitDepthExceeded(ctx context.Context, typeName string, maxDepth int) {
	capitan.Emit(ctx, SignalDepthExceeded,
		KeyTypeName.Field(typeName),
		KeyMaxDepth.Field(maxDepth),
	)
}
