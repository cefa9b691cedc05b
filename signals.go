package blueprint

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for render events.
var (
	SignalRendererCreated = capitan.NewSignal("blueprint.renderer.created", "Renderer instantiated")
	SignalRenderStart     = capitan.NewSignal("blueprint.render.start", "Render operation beginning")
	SignalRenderComplete  = capitan.NewSignal("blueprint.render.complete", "Render operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyOperation   = capitan.NewStringKey("operation")
	KeyView        = capitan.NewStringKey("view")
	KeyObjectCount = capitan.NewIntKey("object_count")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitRendererCreated emits an event when a renderer is created.
func emitRendererCreated(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalRendererCreated,
		KeyContentType.Field(contentType),
	)
}

// emitRenderStart emits an event when a render operation begins.
func emitRenderStart(ctx context.Context, contentType, operation, view string) {
	capitan.Emit(ctx, SignalRenderStart,
		KeyContentType.Field(contentType),
		KeyOperation.Field(operation),
		KeyView.Field(view),
	)
}

// emitRenderComplete emits an event when a render operation finishes.
func emitRenderComplete(ctx context.Context, contentType, operation, view string, objects, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyOperation.Field(operation),
		KeyView.Field(view),
		KeyObjectCount.Field(objects),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRenderComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRenderComplete, fields...)
	}
}
