package export

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/atotto/clipboard"
)

// ComponentEntryName is the filename the emitted component is meant to live
// under, both in the bundle and in the consumer's project.
const ComponentEntryName = "GridOverlay.jsx"

// componentTemplate renders the standalone component source. Delimiters are
// << >> because JSX is full of literal double braces.
//
// The component hard-codes the current configuration and style as literals
// but regenerates its field with unseeded randomness on mount: every
// embedding gets a fresh field shaped by the same ranges. Masked cells render
// as empty placeholders so the grid layout is preserved.
var componentTemplate = template.Must(template.New("component").Delims("<<", ">>").Parse(`import React, { useMemo } from "react";
import { motion } from "framer-motion";

// Generated by bloominimg. Place next to ./background.png.
// Requires: framer-motion.

const COLS = <<.Cols>>;
const ROWS = <<.Rows>>;
const OPACITY_RANGE = [<<.OpacityMin>>, <<.OpacityMax>>];
const LEVELS = <<.Levels>>;
const DURATION_RANGE = [<<.DurationMin>>, <<.DurationMax>>];
const FILL = "<<.FillColor>>";
const BLEND = "<<.BlendMode>>";
const ANIMATE = <<.Animate>>;
const SHOW_DOTS = <<.Dots>>;
const DOT_COLOR = "<<.DotColor>>";
const DOT_RADIUS = <<.DotRadius>>;
const SHOW_STROKE = <<.Stroke>>;
const STROKE_COLOR = "<<.StrokeColor>>";
const STROKE_WIDTH = <<.StrokeWidth>>;
const STROKE_OPACITY = <<.StrokeOpacity>>;
const MASKED = new Set([<<.MaskedList>>]);

function makeCells() {
  const cells = [];
  for (let i = 0; i < ROWS * COLS; i++) {
    let opacity = OPACITY_RANGE[0] + Math.random() * (OPACITY_RANGE[1] - OPACITY_RANGE[0]);
    if (LEVELS > 1) {
      const step = (OPACITY_RANGE[1] - OPACITY_RANGE[0]) / (LEVELS - 1);
      opacity = OPACITY_RANGE[0] + Math.round((opacity - OPACITY_RANGE[0]) / step) * step;
    }
    cells.push({
      index: i,
      opacity,
      duration: DURATION_RANGE[0] + Math.random() * (DURATION_RANGE[1] - DURATION_RANGE[0]),
      delay: Math.random() * 2,
    });
  }
  return cells;
}

function withAlpha(hex, alpha) {
  const a = Math.round(Math.max(0, Math.min(1, alpha)) * 255);
  return hex + a.toString(16).padStart(2, "0");
}

export default function GridOverlay() {
  const cells = useMemo(makeCells, []);
  return (
    <div style={{ position: "relative", width: "100%", lineHeight: 0 }}>
      <img src="./background.png" alt="" style={{ width: "100%", display: "block" }} />
      <div
        style={{
          position: "absolute",
          inset: 0,
          display: "grid",
          gridTemplateColumns: ` + "`repeat(${COLS}, 1fr)`" + `,
          gridTemplateRows: ` + "`repeat(${ROWS}, 1fr)`" + `,
          mixBlendMode: BLEND,
          pointerEvents: "none",
          zIndex: 10,
        }}
      >
        {cells.map((cell) =>
          MASKED.has(cell.index) ? (
            <div key={cell.index} />
          ) : (
            <motion.div
              key={cell.index}
              style={{
                backgroundColor: FILL,
                boxShadow: SHOW_STROKE
                  ? ` + "`inset 0 0 0 ${STROKE_WIDTH}px ${withAlpha(STROKE_COLOR, cell.opacity * STROKE_OPACITY)}`" + `
                  : "none",
              }}
              initial={{ opacity: 0 }}
              animate={ANIMATE ? { opacity: [0, cell.opacity, 0] } : { opacity: cell.opacity }}
              transition={
                ANIMATE
                  ? { duration: cell.duration, delay: cell.delay, repeat: Infinity, ease: "easeInOut" }
                  : { duration: 0 }
              }
            />
          )
        )}
      </div>
      {SHOW_DOTS && (
        <svg
          style={{ position: "absolute", inset: 0, width: "100%", height: "100%", pointerEvents: "none", zIndex: 11 }}
        >
          {Array.from({ length: (ROWS + 1) * (COLS + 1) }, (_, i) => (
            <circle
              key={i}
              cx={` + "`${(i % (COLS + 1)) * (100 / COLS)}%`" + `}
              cy={` + "`${Math.floor(i / (COLS + 1)) * (100 / ROWS)}%`" + `}
              r={DOT_RADIUS}
              fill={DOT_COLOR}
            />
          ))}
        </svg>
      )}
    </div>
  );
}
`))

type componentData struct {
	Cols, Rows, Levels       int
	OpacityMin, OpacityMax   float64
	DurationMin, DurationMax float64
	FillColor, BlendMode     string
	Animate, Dots, Stroke    bool
	DotColor, StrokeColor    string
	DotRadius, StrokeWidth   float64
	StrokeOpacity            float64
	MaskedList               string
}

// Component renders the standalone component source for the overlay.
func Component(o Overlay) string {
	masked := o.Mask.Indices()
	sort.Ints(masked)
	parts := make([]string, len(masked))
	for i, idx := range masked {
		parts[i] = fmt.Sprintf("%d", idx)
	}

	data := componentData{
		Cols:          o.Grid.Cols,
		Rows:          o.Grid.Rows(),
		Levels:        o.Grid.Levels,
		OpacityMin:    o.Grid.OpacityMin,
		OpacityMax:    o.Grid.OpacityMax,
		DurationMin:   o.Grid.DurationMin,
		DurationMax:   o.Grid.DurationMax,
		FillColor:     o.Style.FillColor,
		BlendMode:     o.Style.BlendMode,
		Animate:       o.Style.Animate,
		Dots:          o.Style.Dots,
		Stroke:        o.Style.Stroke,
		DotColor:      o.Style.DotColor,
		DotRadius:     o.Style.DotRadius,
		StrokeColor:   o.Style.StrokeColor,
		StrokeWidth:   o.Style.StrokeWidth,
		StrokeOpacity: o.Style.StrokeOpacity,
		MaskedList:    strings.Join(parts, ", "),
	}

	var sb strings.Builder
	if err := componentTemplate.Execute(&sb, data); err != nil {
		// Template and data are both fixed at compile time.
		panic(err)
	}
	return sb.String()
}

// CopyComponent puts the component source on the system clipboard.
func CopyComponent(o Overlay) error {
	if err := clipboard.WriteAll(Component(o)); err != nil {
		return fmt.Errorf("copy component: %w", err)
	}
	return nil
}
