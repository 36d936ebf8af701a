package imaging

import (
	"fmt"

	"github.com/deppfellow/portfolio-api/internal/model"
)

// DescribeRounded returns a style-only circular rendering of url.
func DescribeRounded(url string, size int) model.Variant {
	px := fmt.Sprintf("%dpx", size)
	return model.Variant{
		URL:    url,
		Width:  size,
		Height: size,
		Style: map[string]string{
			"width":        px,
			"height":       px,
			"borderRadius": "50%",
			"objectFit":    "cover",
		},
		ClassName: "rounded-image",
	}
}

// DescribeSizes returns one style-only variant per entry of Sizes, all
// pointing at url.
func DescribeSizes(url string) map[string]model.Variant {
	variants := make(map[string]model.Variant, len(Sizes))
	for _, s := range Sizes {
		px := fmt.Sprintf("%dpx", s.Width)
		variants[s.Name] = model.Variant{
			URL:    url,
			Width:  s.Width,
			Height: s.Width,
			Style: map[string]string{
				"maxWidth":  px,
				"maxHeight": px,
				"objectFit": "cover",
			},
		}
	}
	return variants
}
