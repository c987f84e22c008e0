package migrate

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// The legacy attitude box was sized in pixels on a fixed canvas.
const (
	referenceHeight = 600.0
	referenceWidth  = 500.0
	defaultBoxSize  = 100.0
)

// AttitudeStrategy converts the legacy `pioneers [v, m] [width height]`
// form (and its settlers/townplanners twins) to the four-coordinate
// `pioneers [v1, m1, v2, m2]` box. A missing size means a 100x100 box.
type AttitudeStrategy struct{}

var legacyAttitude = regexp.MustCompile(`^(\s*)(pioneers|settlers|townplanners)\s*\[\s*([^\[\],\s]+)\s*,\s*([^\[\],\s]+)\s*\](?:\s*\[\s*([^\[\],\s]+)\s*[,\s]\s*([^\[\],\s]+)\s*\])?(.*)$`)

func (a *AttitudeStrategy) Name() string { return "attitude" }

func (a *AttitudeStrategy) Apply(text string) Result {
	return rewriteLines(text, func(line string) ([]string, bool) {
		m := legacyAttitude.FindStringSubmatch(line)
		if m == nil {
			return nil, false
		}
		indent, keyword, vRaw, mRaw, wRaw, hRaw, tail := m[1], m[2], m[3], m[4], m[5], m[6], m[7]

		v, err := strconv.ParseFloat(vRaw, 64)
		if err != nil {
			return nil, false
		}
		mat, err := strconv.ParseFloat(mRaw, 64)
		if err != nil {
			return nil, false
		}
		width, height := defaultBoxSize, defaultBoxSize
		if wRaw != "" {
			if width, err = strconv.ParseFloat(wRaw, 64); err != nil {
				return nil, false
			}
			if height, err = strconv.ParseFloat(hRaw, 64); err != nil {
				return nil, false
			}
		}

		v2 := round2(v - height/referenceHeight)
		m2 := round2(mat + width/referenceWidth)
		coords := strings.Join([]string{vRaw, mRaw, formatFloat(v2), formatFloat(m2)}, ", ")
		return []string{indent + keyword + " [" + coords + "]" + tail}, true
	})
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
