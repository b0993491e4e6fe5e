package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/heatsim/internal/diffuse"
)

var strokeColors = []string{"#00ccff", "#00ff88", "#ffcc00", "#ff8800", "#ff4444"}

// ProfilesToSVG draws each profile as a polyline over x, earliest to
// latest, on a shared vertical scale.
func ProfilesToSVG(profiles []diffuse.Profile, width, height int) string {
	if len(profiles) == 0 || len(profiles[0]) < 2 {
		return ""
	}

	lo, hi := profiles[0].MinMax()
	for _, p := range profiles[1:] {
		plo, phi := p.MinMax()
		if plo < lo {
			lo = plo
		}
		if phi > hi {
			hi = phi
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	lo -= span * 0.1
	hi += span * 0.1
	span = hi - lo

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for pi, p := range profiles {
		color := strokeColors[pi%len(strokeColors)]
		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))

		n := len(p)
		for i, v := range p {
			x := float64(i) / float64(n-1) * float64(width)
			y := float64(height) - (v-lo)/span*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func ExportSVG(path string, profiles []diffuse.Profile, width, height int) error {
	svg := ProfilesToSVG(profiles, width, height)
	if svg == "" {
		return fmt.Errorf("export: no profiles to draw")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
