package plotting

import (
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/kovidgoyal/imaging"

	"github.com/spectraplot/spectraplot/pkg/errors"
)

// diagramBackground loads the pre-rendered chromaticity diagram bitmap for
// the given diagram and observer names, e.g.
// "CIE_1931_Chromaticity_Diagram_CIE_1931_2_Degree_Standard_Observer_Small.png".
//
// An empty resources directory returns a nil image without error: the diagram
// is drawn without its colour background. A configured directory with a
// missing or undecodable file is an error.
func diagramBackground(resourcesDir, diagram, cmfsName string) (image.Image, error) {
	if resourcesDir == "" {
		return nil, nil
	}

	name := diagram + "_" + strings.ReplaceAll(cmfsName, " ", "_") + "_Small.png"
	path := filepath.Join(resourcesDir, name)

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, errors.ErrResourceNotFound,
			errors.CategoryResource, "diagram background bitmap not found").
			WithContext("path", path)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrResourceDecodeFailed,
			errors.CategoryResource, "diagram background bitmap not decodable").
			WithContext("path", path)
	}
	return img, nil
}
