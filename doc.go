// Package scrollkit animates numeric style properties from the vertical
// scroll position.
//
// Each animation is an [Instance]: an activation window in scroll space
// (a from/to offset pair) mapped to one or more eased property value
// ranges. On every frame in which the scroll position changed, the
// [Scheduler] recomputes all active instances and publishes the resulting
// "<number><unit>" strings to a [PropertyWriter].
//
// # Quick start
//
//	registry := scrollkit.NewRegistry()
//	viewport := &scrollkit.SimViewport{ViewHeight: 800}
//
//	fade, err := scrollkit.New(registry, viewport, scrollkit.Descriptor{
//		From: "0px",
//		To:   "480px",
//		Props: map[string]scrollkit.Property{
//			"--opacity": {From: "1", To: "0", Timing: "quadOut"},
//		},
//	})
//	if err != nil {
//		// validation errors surface here, never per frame
//	}
//	fade.Start()
//
//	sched := scrollkit.NewScheduler(registry, viewport, writer)
//	sched.Run(ctx, 0) // or call sched.Tick() from your own frame loop
//
// # Boundaries
//
// Window boundaries are absolute expressions ("100px", "-12.5", "80%") or,
// when [Descriptor.Anchor] is set, relative anchor pairs such as
// "top-middle": the scroll offset at which the element's top edge reaches
// the middle of the viewport. Anchors are top, middle, and bottom on both
// sides. Relative boundaries are resolved to absolute pixel offsets once,
// at creation or [Instance.Calculate] time, never per frame.
//
// # Timing
//
// Property ranges ease the shared progress fraction through a named curve
// from the built-in table ([TimingNames] lists them; the curves come from
// [gween/ease]) or through a custom [Timing] function. The default is
// linear.
//
// # Hosts
//
// The engine only needs a [Viewport] to read scroll state from, an
// [Element] per anchor, and a [PropertyWriter] to publish into. The
// ebitenview subpackage adapts an Ebitengine window; [SimViewport] and
// [ScriptRunner] drive the engine without any host at all.
//
// [gween/ease]: https://github.com/tanema/gween
package scrollkit
