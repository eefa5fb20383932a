package tracer

import (
	"errors"
	"sort"
	"sync"

	"image2svg/colorquant"
	i2stypes "image2svg/type"
)

// ErrNoSignificantColors 量化后没有任何保留的颜色桶（全透明或全是噪点）
var ErrNoSignificantColors = errors.New("no significant colors found in image")

// ErrNoTraceablePaths 所有颜色的掩码都描不出有效轮廓
var ErrNoTraceablePaths = errors.New("no traceable paths found in image")

// Options 描摹参数
type Options struct {
	Quant         colorquant.Options
	DenoiseRadius int // 描摹前的去噪半径，0 表示关闭
}

// TraceImage 按默认参数描摹像素缓冲
func TraceImage(buf *i2stypes.PixelBuffer) (*i2stypes.TracedData, error) {
	return TraceImageWith(buf, Options{})
}

// TraceImageWith 把像素缓冲描摹为按面积降序排列的矢量形状
// 每个颜色的掩码、去噪和描摹相互独立，并行处理后统一排序
func TraceImageWith(buf *i2stypes.PixelBuffer, opt Options) (*i2stypes.TracedData, error) {
	colors := colorquant.Quantize(buf, opt.Quant)
	if len(colors) == 0 {
		return nil, ErrNoSignificantColors
	}

	shapes := make([]*i2stypes.TracedShape, len(colors))

	var wg sync.WaitGroup
	for i, qc := range colors {
		wg.Add(1)
		go func(idx int, qc i2stypes.QuantizedColor) {
			defer wg.Done()
			mask := colorquant.BuildMask(buf, qc, opt.Quant)
			mask = Denoise(mask, opt.DenoiseRadius)
			contours := TraceMask(mask)
			if len(contours) == 0 {
				return
			}
			shapes[idx] = &i2stypes.TracedShape{
				Color:    qc.Color,
				Contours: contours,
				Area:     qc.Count,
			}
		}(i, qc)
	}
	wg.Wait()

	data := &i2stypes.TracedData{Width: buf.Width, Height: buf.Height}
	for _, s := range shapes {
		if s != nil {
			data.Shapes = append(data.Shapes, *s)
		}
	}
	if len(data.Shapes) == 0 {
		return nil, ErrNoTraceablePaths
	}

	// 面积大的先画，小的细节盖在上面
	sort.SliceStable(data.Shapes, func(i, j int) bool {
		return data.Shapes[i].Area > data.Shapes[j].Area
	})
	return data, nil
}
