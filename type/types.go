package i2stypes

import (
	"image"
)

// Color RGBA 颜色，每通道 0–255
type Color struct {
	R, G, B, A int
}

// QuantizedColor 量化后的颜色桶，Count 为归属该桶的像素数
type QuantizedColor struct {
	Color Color
	Count int
}

// Point 像素坐标系下的浮点坐标
type Point struct {
	X, Y float64
}

// Path 闭合轮廓：有序点列，末点隐式连回首点
type Path []Point

// PixelBuffer 行主序 RGBA 像素缓冲，每像素 4 字节
type PixelBuffer struct {
	Width  int
	Height int
	Data   []uint8
}

// NewPixelBuffer 创建全透明的像素缓冲
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Data:   make([]uint8, width*height*4),
	}
}

// FromImage 将任意 image.Image 转为 PixelBuffer
func FromImage(img image.Image) *PixelBuffer {
	bounds := img.Bounds()
	buf := NewPixelBuffer(bounds.Dx(), bounds.Dy())
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			buf.Data[i+0] = uint8(r >> 8)
			buf.Data[i+1] = uint8(g >> 8)
			buf.Data[i+2] = uint8(b >> 8)
			buf.Data[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return buf
}

// SetPixel 写入单个像素，越界时忽略
func (p *PixelBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return
	}
	i := (y*p.Width + x) * 4
	p.Data[i+0] = uint8(c.R)
	p.Data[i+1] = uint8(c.G)
	p.Data[i+2] = uint8(c.B)
	p.Data[i+3] = uint8(c.A)
}

// Mask 二值透明度掩码，Alpha 只取 0 或 255
type Mask struct {
	Width  int
	Height int
	Alpha  []uint8
}

// NewMask 创建全透明掩码
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Alpha:  make([]uint8, width*height),
	}
}

// Opaque 判断 (x,y) 是否不透明，越界视为透明
func (m *Mask) Opaque(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Alpha[y*m.Width+x] != 0
}

// Clone 复制掩码
func (m *Mask) Clone() *Mask {
	c := NewMask(m.Width, m.Height)
	copy(c.Alpha, m.Alpha)
	return c
}

// TracedShape 单个颜色描摹出的轮廓集合
// Contours 同时包含外轮廓与内部孔洞，渲染时靠 even-odd 填充区分
type TracedShape struct {
	Color    Color
	Contours []Path
	Area     int
}

// TracedData 一次描摹的完整结果，Shapes 按 Area 从大到小排列
// Contours 保留未化简的原始点列，换简化参数时无需重新扫描位图
type TracedData struct {
	Width  int
	Height int
	Shapes []TracedShape
}

// Frame 视频中的一帧图像
type Frame struct {
	Index int
	Image image.Image
}
