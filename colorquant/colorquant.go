package colorquant

import (
	i2stypes "image2svg/type"
)

const (
	// DefaultStep 颜色通道的量化步长
	DefaultStep = 32
	// DefaultMinPixels 颜色桶保留的最小像素数，低于此视为噪点
	DefaultMinPixels = 10

	// alphaVisibleMin 低于此透明度的像素不参与量化
	alphaVisibleMin = 16
	// opaqueMin 达到此透明度的像素统一归入不透明桶
	opaqueMin = 224
)

// Options 量化参数
type Options struct {
	Step      int // 通道量化步长，<=0 时取 DefaultStep
	MinPixels int // 颜色桶最小像素数，<=0 时取 DefaultMinPixels
}

func (o Options) normalize() Options {
	if o.Step <= 0 {
		o.Step = DefaultStep
	}
	if o.MinPixels <= 0 {
		o.MinPixels = DefaultMinPixels
	}
	return o
}

// bucketKey 颜色桶键：量化后的 RGB 加有效透明度
// 不透明像素的有效透明度统一折叠为 255，避免抗锯齿边缘碎成多个近似桶
type bucketKey struct {
	r, g, b, a int
}

func quantChannel(v, step int) int {
	// 整除下取整，避免四舍五入越过 255
	return v / step * step
}

// effectiveAlpha 计算桶键使用的有效透明度
// 透明度量化步长为颜色步长的两倍
func effectiveAlpha(a, step int) int {
	if a >= opaqueMin {
		return 255
	}
	return quantChannel(a, step*2)
}

// Quantize 将像素缓冲归并为少量代表色，按发现顺序返回
// 每个桶的代表色保留首个像素折叠前的原始透明度，供 BuildMask 精确匹配
func Quantize(buf *i2stypes.PixelBuffer, opt Options) []i2stypes.QuantizedColor {
	opt = opt.normalize()

	index := make(map[bucketKey]int)
	var buckets []i2stypes.QuantizedColor

	n := buf.Width * buf.Height
	for i := 0; i < n; i++ {
		p := buf.Data[i*4 : i*4+4]
		a := int(p[3])
		if a < alphaVisibleMin {
			continue
		}
		key := bucketKey{
			r: quantChannel(int(p[0]), opt.Step),
			g: quantChannel(int(p[1]), opt.Step),
			b: quantChannel(int(p[2]), opt.Step),
			a: effectiveAlpha(a, opt.Step),
		}
		if idx, ok := index[key]; ok {
			buckets[idx].Count++
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, i2stypes.QuantizedColor{
			Color: i2stypes.Color{R: key.r, G: key.g, B: key.b, A: a},
			Count: 1,
		})
	}

	// 过滤噪点桶
	kept := buckets[:0]
	for _, b := range buckets {
		if b.Count >= opt.MinPixels {
			kept = append(kept, b)
		}
	}
	return kept
}

// BuildMask 为目标颜色生成二值掩码：匹配像素的 Alpha 为 255，其余为 0
// 匹配规则与 Quantize 的分桶完全一致，保证各颜色掩码互不重叠
func BuildMask(buf *i2stypes.PixelBuffer, target i2stypes.QuantizedColor, opt Options) *i2stypes.Mask {
	opt = opt.normalize()

	targetAlpha := effectiveAlpha(target.Color.A, opt.Step)
	mask := i2stypes.NewMask(buf.Width, buf.Height)

	n := buf.Width * buf.Height
	for i := 0; i < n; i++ {
		p := buf.Data[i*4 : i*4+4]
		a := int(p[3])
		if a < alphaVisibleMin {
			continue
		}
		if quantChannel(int(p[0]), opt.Step) != target.Color.R ||
			quantChannel(int(p[1]), opt.Step) != target.Color.G ||
			quantChannel(int(p[2]), opt.Step) != target.Color.B {
			continue
		}
		// 目标在不透明桶时宽松匹配所有不透明像素，
		// 否则要求量化透明度严格相等，保持不同半透明层彼此独立
		if effectiveAlpha(a, opt.Step) != targetAlpha {
			continue
		}
		mask.Alpha[i] = 255
	}
	return mask
}
