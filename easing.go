package scrollkit

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// fromEase adapts a gween easing function to the Timing shape. gween easings
// take (elapsed, begin, change, duration); driving them with begin 0,
// change 1, duration 1 yields the bare [0,1] → [0,1] curve.
func fromEase(fn ease.TweenFunc) Timing {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Linear is the identity timing curve, applied when a property declares no
// timing of its own.
var Linear = fromEase(ease.Linear)

// timings maps the public curve names to their gween implementations.
var timings = map[string]Timing{
	"linear":       Linear,
	"quadIn":       fromEase(ease.InQuad),
	"quadOut":      fromEase(ease.OutQuad),
	"quadInOut":    fromEase(ease.InOutQuad),
	"cubicIn":      fromEase(ease.InCubic),
	"cubicOut":     fromEase(ease.OutCubic),
	"cubicInOut":   fromEase(ease.InOutCubic),
	"quartIn":      fromEase(ease.InQuart),
	"quartOut":     fromEase(ease.OutQuart),
	"quartInOut":   fromEase(ease.InOutQuart),
	"quintIn":      fromEase(ease.InQuint),
	"quintOut":     fromEase(ease.OutQuint),
	"quintInOut":   fromEase(ease.InOutQuint),
	"sineIn":       fromEase(ease.InSine),
	"sineOut":      fromEase(ease.OutSine),
	"sineInOut":    fromEase(ease.InOutSine),
	"expoIn":       fromEase(ease.InExpo),
	"expoOut":      fromEase(ease.OutExpo),
	"expoInOut":    fromEase(ease.InOutExpo),
	"circIn":       fromEase(ease.InCirc),
	"circOut":      fromEase(ease.OutCirc),
	"circInOut":    fromEase(ease.InOutCirc),
	"elasticIn":    fromEase(ease.InElastic),
	"elasticOut":   fromEase(ease.OutElastic),
	"elasticInOut": fromEase(ease.InOutElastic),
	"backIn":       fromEase(ease.InBack),
	"backOut":      fromEase(ease.OutBack),
	"backInOut":    fromEase(ease.InOutBack),
	"bounceIn":     fromEase(ease.InBounce),
	"bounceOut":    fromEase(ease.OutBounce),
	"bounceInOut":  fromEase(ease.InOutBounce),
}

// TimingByName looks up a built-in timing curve by its public name
// (e.g. "linear", "quadIn", "bounceOut"). The second return value reports
// whether the name is known.
func TimingByName(name string) (Timing, bool) {
	t, ok := timings[name]
	return t, ok
}

// TimingNames returns the sorted names of all built-in timing curves, so
// hosts can enumerate or validate them up front.
func TimingNames() []string {
	names := make([]string, 0, len(timings))
	for name := range timings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
