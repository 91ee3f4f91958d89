package background

import (
	"github.com/ironsheep/shrine-bgremove/internal/imaging"
)

// Report describes a completed Process run.
type Report struct {
	Input   string                       `json:"input"`
	Output  string                       `json:"output"`
	Source  imaging.ImageInfo            `json:"source"`
	Corners []imaging.LabeledColorResult `json:"corners"`
	Stats
}

// Process loads the image at inputPath, removes its border-connected gray
// background and writes the result as PNG to outputPath, creating missing
// parent directories.
//
// Any failure aborts the run before the output file is created: a missing or
// undecodable input, an uncreatable output directory, or an encode or write
// error.
func Process(inputPath, outputPath string) (*Report, error) {
	src, err := imaging.Open(inputPath)
	if err != nil {
		return nil, err
	}

	info, err := imaging.LoadImageInfo(inputPath, src)
	if err != nil {
		return nil, err
	}

	img := imaging.ToNRGBA(src)

	corners, err := imaging.SampleColorsMulti(img, imaging.CornerPoints(img))
	if err != nil {
		return nil, err
	}

	stats := RemoveBackground(img)

	if err := imaging.SavePNG(outputPath, img); err != nil {
		return nil, err
	}

	return &Report{
		Input:   inputPath,
		Output:  outputPath,
		Source:  *info,
		Corners: corners,
		Stats:   *stats,
	}, nil
}
