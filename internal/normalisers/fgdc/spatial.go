package fgdc

import (
	"math"
	"strconv"
	"strings"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/logger"
	"github.com/custodia-labs/fgdc2sb/internal/normalisers/fgdc/xmltree"
)

// spatial reconciles the four bounding coordinates. It returns nil unless
// all four resolve to finite numbers.
func spatial(doc *xmltree.Document) *domain.Spatial {
	var bounds [4]float64
	for i, paths := range boundPaths {
		v, ok := readBound(doc, paths[0])
		if !ok {
			v, ok = readBound(doc, paths[1])
		}
		if !ok {
			logger.Debug("bounding box omitted: no value for %s", paths[0])
			return nil
		}
		bounds[i] = v
	}

	return &domain.Spatial{
		BoundingBox: domain.NewBoundingBox(bounds[0], bounds[1], bounds[2], bounds[3]),
	}
}

func readBound(doc *xmltree.Document, path string) (float64, bool) {
	text := strings.TrimSpace(doc.FirstTextAt(path))
	if text == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		logger.Debug("ignoring bound %s: %q is not a number", path, text)
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		logger.Debug("ignoring bound %s: %q is not finite", path, text)
		return 0, false
	}
	return v, true
}
