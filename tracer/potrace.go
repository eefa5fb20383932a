package tracer

import (
	"bytes"
	"image"
	"image/color"

	"github.com/gotranspile/gotrace"

	"image2svg/colorquant"
	i2stypes "image2svg/type"
)

// PotraceMaskSVG 用 gotrace 把单个掩码描成带曲线拟合的 SVG 字符串
// 作为内置 Moore 描摹器之外的备选引擎，输出每掩码一份独立文档
func PotraceMaskSVG(m *i2stypes.Mask) (string, error) {
	gray := maskToGray(m)
	bm := gotrace.BitmapFromGray(gray, nil)

	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := gotrace.Render("svg", nil, &buf, paths, m.Width, m.Height); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// maskToGray 掩码转灰度图：不透明为黑，其余为白
func maskToGray(m *i2stypes.Mask) *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Opaque(x, y) {
				gray.SetGray(x, y, color.Gray{Y: 0})
			} else {
				gray.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return gray
}

// TraceMasksPotrace 为每个量化颜色生成一份 gotrace SVG
// 返回值与量化颜色顺序一一对应
func TraceMasksPotrace(buf *i2stypes.PixelBuffer, opt Options) ([]string, []i2stypes.QuantizedColor, error) {
	colors := colorquant.Quantize(buf, opt.Quant)
	if len(colors) == 0 {
		return nil, nil, ErrNoSignificantColors
	}
	out := make([]string, len(colors))
	for i, qc := range colors {
		mask := colorquant.BuildMask(buf, qc, opt.Quant)
		mask = Denoise(mask, opt.DenoiseRadius)
		svgStr, err := PotraceMaskSVG(mask)
		if err != nil {
			return nil, nil, err
		}
		out[i] = svgStr
	}
	return out, colors, nil
}
